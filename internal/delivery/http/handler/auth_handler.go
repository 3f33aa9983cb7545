package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"silverwork/internal/delivery/http/middleware"
	"silverwork/internal/pkg/response"
	ucauth "silverwork/internal/usecase/auth"
)

type AuthHandler struct {
	uc ucauth.Usecase
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`

	Preferences struct {
		WorkLocation string `json:"workLocation"`
		JobType      string `json:"jobType"`
	} `json:"preferences"`

	CompanyInfo struct {
		BusinessNumber string `json:"businessNumber"`
		Address        string `json:"address"`
	} `json:"companyInfo"`
}

func NewAuthHandler(uc ucauth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	}

	usr, tok, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthorized, "", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
	}

	return response.OK(c, fiber.Map{"user": usr, "token": tok})
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
	}

	in := ucauth.RegisterInput{
		Role:     req.Role,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Preferences: ucauth.PreferencesInput{
			WorkLocation: req.Preferences.WorkLocation,
			JobType:      req.Preferences.JobType,
		},
		CompanyInfo: ucauth.CompanyInfoInput{
			BusinessNumber: req.CompanyInfo.BusinessNumber,
			Address:        req.CompanyInfo.Address,
		},
	}

	if err := h.uc.Register(c.Context(), in); err != nil {
		switch {
		case errors.Is(err, ucauth.ErrDuplicateID):
			return middleware.NewAppError(fiber.StatusConflict, response.CodeDuplicateID, "", err)
		case errors.Is(err, ucauth.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
		}
	}

	return response.OK(c, nil)
}
