package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"silverwork/internal/delivery/http/dto"
	"silverwork/internal/delivery/http/middleware"
	"silverwork/internal/pkg/response"
	ucapplication "silverwork/internal/usecase/application"
)

type ApplicationsHandler struct {
	uc ucapplication.Usecase
}

type createApplicationRequest struct {
	SeniorID string `json:"senior_id"`
	JobID    int64  `json:"job_id"`
	Notes    string `json:"notes"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationsHandler(uc ucapplication.Usecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applications", h.List)
	r.Post("/applications", h.Create)
	r.Put("/applications/:id/status", h.UpdateStatus)
}

func (h *ApplicationsHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
	}

	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, dto.NewApplicationResponse(a))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *ApplicationsHandler) Create(c fiber.Ctx) error {
	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	}

	created, err := h.uc.Create(c.Context(), ucapplication.CreateInput{
		SeniorID: req.SeniorID,
		JobID:    req.JobID,
		Notes:    req.Notes,
	})
	if err != nil {
		return mapApplicationError(err)
	}

	return response.OK(c, fiber.Map{"application": dto.NewApplicationResponse(created)})
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "", err)
	}

	var req updateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	}

	if err := h.uc.UpdateStatus(c.Context(), id, req.Status); err != nil {
		return mapApplicationError(err)
	}

	return response.OK(c, nil)
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, ucapplication.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "application not found", err)
	case errors.Is(err, ucapplication.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeInvalidStatus, "", err)
	case errors.Is(err, ucapplication.ErrIllegalTransition):
		return middleware.NewAppError(fiber.StatusConflict, response.CodeIllegalTransition, "", err)
	case errors.Is(err, ucapplication.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
	}
}
