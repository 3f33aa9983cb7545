package handler

import (
	"github.com/gofiber/fiber/v3"

	"silverwork/internal/delivery/http/dto"
	"silverwork/internal/delivery/http/middleware"
	"silverwork/internal/pkg/response"
	uchistory "silverwork/internal/usecase/history"
)

type HistoriesHandler struct {
	uc uchistory.Usecase
}

func NewHistoriesHandler(uc uchistory.Usecase) *HistoriesHandler {
	return &HistoriesHandler{uc: uc}
}

func (h *HistoriesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/histories", h.List)
}

func (h *HistoriesHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "", err)
	}

	out := make([]dto.HistoryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewHistoryResponse(item))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
