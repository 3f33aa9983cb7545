package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"silverwork/internal/delivery/http/middleware"
	"silverwork/internal/pkg/response"
	ucprofile "silverwork/internal/usecase/profile"
)

type SeniorsHandler struct {
	uc ucprofile.Usecase
}

type updateProfileRequest struct {
	BirthDate            string `json:"birth_date"`
	Gender               string `json:"gender"`
	Address              string `json:"address"`
	RestrictedActivities string `json:"restricted_activities"`
	EmploymentType       string `json:"employment_type"`
	Location             string `json:"location"`
	WorkDays             string `json:"work_days"`
	WorkHours            string `json:"work_hours"`
	WorkPeriod           string `json:"work_period"`
}

func NewSeniorsHandler(uc ucprofile.Usecase) *SeniorsHandler {
	return &SeniorsHandler{uc: uc}
}

func (h *SeniorsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/seniors/:id", h.Get)
	r.Put("/seniors/:id", h.Update)
}

func (h *SeniorsHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapProfileError(err)
	}

	return response.OK(c, fiber.Map{"profile": p})
}

func (h *SeniorsHandler) Update(c fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	}

	err := h.uc.Update(c.Context(), c.Params("id"), ucprofile.UpdateInput{
		BirthDate:            req.BirthDate,
		Gender:               req.Gender,
		Address:              req.Address,
		RestrictedActivities: req.RestrictedActivities,
		EmploymentType:       req.EmploymentType,
		Location:             req.Location,
		WorkDays:             req.WorkDays,
		WorkHours:            req.WorkHours,
		WorkPeriod:           req.WorkPeriod,
	})
	if err != nil {
		return mapProfileError(err)
	}

	return response.OK(c, nil)
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, ucprofile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "senior not found", err)
	case errors.Is(err, ucprofile.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
	}
}
