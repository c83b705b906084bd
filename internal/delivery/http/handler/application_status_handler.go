package handler

import (
	"hire-flow/internal/delivery/http/middleware"
	"hire-flow/internal/pkg/response"
	"hire-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationStatusHandler struct {
	uc usecase.ApplicationStatusUsecase
}

// updateStatusRequest carries the status under a nested object. The single
// update keeps its own payload shape; it is not the bulk endpoint's.
type updateStatusRequest struct {
	Status struct {
		Status string `json:"status"`
	} `json:"status"`
}

func NewApplicationStatusHandler(uc usecase.ApplicationStatusUsecase) *ApplicationStatusHandler {
	return &ApplicationStatusHandler{uc: uc}
}

func (h *ApplicationStatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Patch("/:applicationID/status", h.UpdateStatus)
}

func (h *ApplicationStatusHandler) UpdateStatus(c fiber.Ctx) error {
	employerID, ok := employerIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	applicationID, ok := parseUUIDParam(c, "applicationID")
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, nil)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	status, err := h.uc.UpdateStatus(c.Context(), employerID, applicationID, req.Status.Status)
	if err != nil {
		return mapApplicantUsecaseError(err)
	}

	data := map[string]any{
		"application_id": applicationID,
		"status":         status,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
