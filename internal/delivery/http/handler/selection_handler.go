package handler

import (
	"hire-flow/internal/delivery/http/middleware"
	"hire-flow/internal/domain/applicant"
	"hire-flow/internal/domain/application"
	"hire-flow/internal/pkg/response"
	"hire-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SelectionHandler struct {
	uc usecase.SelectionUsecase
}

type toggleSelectionRequest struct {
	ApplicationID uuid.UUID `json:"application_id"`
	UserID        uuid.UUID `json:"user_id"`
}

type selectAllRequest struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

func NewSelectionHandler(uc usecase.SelectionUsecase) *SelectionHandler {
	return &SelectionHandler{uc: uc}
}

func (h *SelectionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:jobID/applicants/selection", h.Get)
	r.Post("/:jobID/applicants/selection/toggle", h.Toggle)
	r.Post("/:jobID/applicants/selection/select-all", h.SelectAll)
	r.Delete("/:jobID/applicants/selection", h.Clear)
}

func (h *SelectionHandler) Get(c fiber.Ctx) error {
	employerID, jobID, err := h.scope(c)
	if err != nil {
		return err
	}

	entries, err := h.uc.Get(c.Context(), employerID, jobID)
	if err != nil {
		return mapApplicantUsecaseError(err)
	}

	data := map[string]any{
		"selected": entries,
		"total":    len(entries),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *SelectionHandler) Toggle(c fiber.Ctx) error {
	employerID, jobID, err := h.scope(c)
	if err != nil {
		return err
	}

	var req toggleSelectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	selected, total, err := h.uc.Toggle(c.Context(), employerID, jobID, application.SelectionEntry{
		ApplicationID: req.ApplicationID,
		UserID:        req.UserID,
	})
	if err != nil {
		return mapApplicantUsecaseError(err)
	}

	data := map[string]any{
		"selected": selected,
		"total":    total,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// SelectAll applies the select-all toggle against the filtered set described
// by the request body, not just the visible page.
func (h *SelectionHandler) SelectAll(c fiber.Ctx) error {
	employerID, jobID, err := h.scope(c)
	if err != nil {
		return err
	}

	var req selectAllRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	total, err := h.uc.SelectAll(c.Context(), employerID, jobID, applicant.FilterState{
		SearchTerm: req.Search,
		Status:     req.Status,
		SortBy:     applicant.ParseSortField(req.SortBy),
		SortOrder:  applicant.ParseSortOrder(req.SortOrder),
	})
	if err != nil {
		return mapApplicantUsecaseError(err)
	}

	data := map[string]any{"total": total}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *SelectionHandler) Clear(c fiber.Ctx) error {
	employerID, jobID, err := h.scope(c)
	if err != nil {
		return err
	}

	if err := h.uc.Clear(c.Context(), employerID, jobID); err != nil {
		return mapApplicantUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SelectionHandler) scope(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	employerID, ok := employerIDFromCtx(c)
	if !ok {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}
	return employerID, jobID, nil
}
