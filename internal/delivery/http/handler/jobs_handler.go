package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"silverwork/internal/delivery/http/dto"
	"silverwork/internal/delivery/http/middleware"
	"silverwork/internal/pkg/response"
	ucposting "silverwork/internal/usecase/posting"
)

type JobsHandler struct {
	uc ucposting.Usecase
}

type createJobRequest struct {
	CompanyID      string `json:"company_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	WageType       string `json:"wage_type"`
	WageAmount     int64  `json:"wage_amount"`
	WorkDays       string `json:"work_days"`
	WorkHours      string `json:"work_hours"`
	WorkPeriod     string `json:"work_period"`
	Deadline       string `json:"deadline"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	GovID  string `json:"gov_id"`
}

func NewJobsHandler(uc ucposting.Usecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Post("/jobs", h.Create)
	r.Put("/jobs/:id/status", h.UpdateStatus)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewJobResponse(p))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	}

	created, err := h.uc.Create(c.Context(), ucposting.CreateInput{
		CompanyID:      req.CompanyID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		WageType:       req.WageType,
		WageAmount:     req.WageAmount,
		WorkDays:       req.WorkDays,
		WorkHours:      req.WorkHours,
		WorkPeriod:     req.WorkPeriod,
		Deadline:       req.Deadline,
	})
	if err != nil {
		return mapPostingError(err)
	}

	return response.OK(c, fiber.Map{"job": dto.NewJobResponse(created)})
}

func (h *JobsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "", err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	}

	if err := h.uc.UpdateStatus(c.Context(), id, req.Status, req.GovID); err != nil {
		return mapPostingError(err)
	}

	return response.OK(c, nil)
}

func mapPostingError(err error) error {
	switch {
	case errors.Is(err, ucposting.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "job posting not found", err)
	case errors.Is(err, ucposting.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeInvalidStatus, "", err)
	case errors.Is(err, ucposting.ErrIllegalTransition):
		return middleware.NewAppError(fiber.StatusConflict, response.CodeIllegalTransition, "", err)
	case errors.Is(err, ucposting.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
	}
}

func pathID(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
