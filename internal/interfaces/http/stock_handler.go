package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrinas-api/internal/application/inventory"
)

// StockHandler dashboards y listados del semáforo de stock.
type StockHandler struct {
	uc  *inventory.StockUseCase
	pdf *inventory.RefillPDFUseCase
}

func NewStockHandler(uc *inventory.StockUseCase, pdf *inventory.RefillPDFUseCase) *StockHandler {
	return &StockHandler{uc: uc, pdf: pdf}
}

// SellerDashboard godoc
// @Summary      Dashboard del vendedor (su vitrina)
// @Tags         seller
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SellerDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/seller/dashboard [get]
func (h *StockHandler) SellerDashboard(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SellerDashboard(c.UserContext(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FleetDashboard godoc
// @Summary      Dashboard del administrador
// @Description  Stock total, vitrinas activas, críticos, facturación de los últimos meses y lista a reponer.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FleetDashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *StockHandler) FleetDashboard(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.FleetDashboard(c.UserContext(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CurrentStock godoc
// @Summary      Stock actual de toda la red
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CurrentStockResponse
// @Router       /api/stock [get]
func (h *StockHandler) CurrentStock(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CurrentStock(c.UserContext(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RefillList godoc
// @Summary      Lista de reposición priorizada
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        vitrine_id  query  string  false  "Filtrar por vitrina"
// @Success      200  {object}  dto.RefillListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/refill [get]
func (h *StockHandler) RefillList(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.RefillList(c.UserContext(), actor, c.Query("vitrine_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RefillPDF godoc
// @Summary      Lista de reposición en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        vitrine_id  query  string  false  "Filtrar por vitrina"
// @Success      200
// @Router       /api/stock/refill/pdf [get]
func (h *StockHandler) RefillPDF(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	doc, filename, err := h.pdf.Download(c.UserContext(), actor, c.Query("vitrine_id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	return c.Send(doc)
}
