package handler

import (
	"time"

	"hire-flow/internal/delivery/http/middleware"
	"hire-flow/internal/pkg/response"
	"hire-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BulkActionHandler struct {
	uc usecase.BulkActionUsecase
}

type bulkStatusRequest struct {
	Status string `json:"status"`
}

type bulkInviteRequest struct {
	Message     string     `json:"message"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func NewBulkActionHandler(uc usecase.BulkActionUsecase) *BulkActionHandler {
	return &BulkActionHandler{uc: uc}
}

func (h *BulkActionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:jobID/applicants/bulk-status", h.ChangeStatus)
	r.Post("/:jobID/applicants/invites", h.SendInvites)
}

// ChangeStatus applies one status to every currently selected application.
func (h *BulkActionHandler) ChangeStatus(c fiber.Ctx) error {
	employerID, ok := employerIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	var req bulkStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	affected, err := h.uc.ChangeStatus(c.Context(), employerID, jobID, req.Status)
	if err != nil {
		return mapApplicantUsecaseError(err)
	}

	data := map[string]any{"updated": affected}
	return response.Success(c, fiber.StatusOK, "Application state modified successfully", data)
}

func (h *BulkActionHandler) SendInvites(c fiber.Ctx) error {
	employerID, ok := employerIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	var req bulkInviteRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sent, err := h.uc.SendInvites(c.Context(), employerID, jobID, usecase.InviteInput{
		Message:     req.Message,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return mapApplicantUsecaseError(err)
	}

	data := map[string]any{"sent": sent}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
