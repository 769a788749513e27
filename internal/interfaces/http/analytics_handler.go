package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pedidos-api/internal/application/usecase"
)

// AnalyticsHandler maneja los rankings de mejores clientes y vendedores.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// TopClients godoc
// @Summary      Top 10 clientes por total facturado en pedidos COMPLETADO
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopClientDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/top-clients [get]
func (h *AnalyticsHandler) TopClients(c *fiber.Ctx) error {
	out, err := h.uc.TopClients(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// TopSellers godoc
// @Summary      Top 5 vendedores por total facturado en pedidos COMPLETADO
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopSellerDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/top-sellers [get]
func (h *AnalyticsHandler) TopSellers(c *fiber.Ctx) error {
	out, err := h.uc.TopSellers(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
