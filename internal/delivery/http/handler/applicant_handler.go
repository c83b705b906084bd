package handler

import (
	"errors"
	"strconv"
	"strings"

	"hire-flow/internal/delivery/http/dto"
	"hire-flow/internal/delivery/http/middleware"
	"hire-flow/internal/domain/applicant"
	"hire-flow/internal/pkg/response"
	"hire-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicantHandler struct {
	uc usecase.ApplicantListUsecase
}

func NewApplicantHandler(uc usecase.ApplicantListUsecase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

func (h *ApplicantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:jobID/applicants", h.List)
}

// List serves the applicants page for a job: filtered, sorted, paginated,
// with tab counts over the full set and the caller's current selection.
func (h *ApplicantHandler) List(c fiber.Ctx) error {
	employerID, ok := employerIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid page", nil, err)
		}
		page = v
	}

	out, err := h.uc.ListApplicants(c.Context(), usecase.ApplicantListParams{
		EmployerID: employerID,
		JobID:      jobID,
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		SortBy:     applicant.ParseSortField(c.Query("sort_by")),
		SortOrder:  applicant.ParseSortOrder(c.Query("sort_order")),
		Page:       page,
	})
	if err != nil {
		return mapApplicantUsecaseError(err)
	}

	resp := dto.ApplicantListResponse{
		Applicants: make([]dto.ApplicantResponse, 0, len(out.Records)),
		Page:       out.Page,
		TotalPages: out.TotalPages,
		Total:      out.Total,
		Counts:     dto.NewStatusCountsResponse(out.Counts),
		Job:        dto.NewJobDetailsResponse(out.Job),
		Selected:   out.Selected,
	}
	for _, rec := range out.Records {
		resp.Applicants = append(resp.Applicants, dto.NewApplicantResponse(rec))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, resp)
}

func mapApplicantUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrEmptySelection):
		return middleware.NewAppError(fiber.StatusBadRequest, "Select at least one applicant", nil, err)
	case errors.Is(err, usecase.ErrActionInFlight):
		return middleware.NewAppError(fiber.StatusConflict, "Action already in progress", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
