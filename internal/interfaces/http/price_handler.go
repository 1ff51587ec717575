package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// PriceHandler precios de compra y de venta (protegido).
type PriceHandler struct {
	repo repository.PriceRepository
}

// NewPriceHandler construye el handler.
func NewPriceHandler(repo repository.PriceRepository) *PriceHandler {
	return &PriceHandler{repo: repo}
}

// ListPurchase GET /api/purchase-prices?search=&category=&supplier=
func (h *PriceHandler) ListPurchase(c *fiber.Ctx) error {
	list, err := h.repo.ListPurchasePrices(c.Context(), repository.PurchasePriceFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Supplier: c.Query("supplier"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// CreatePurchase POST /api/purchase-prices
func (h *PriceHandler) CreatePurchase(c *fiber.Ctx) error {
	var in entity.PurchasePrice
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.repo.CreatePurchasePrice(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// UpdatePurchase PUT /api/purchase-prices/:id
func (h *PriceHandler) UpdatePurchase(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.PurchasePrice
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	found, err := h.repo.UpdatePurchasePrice(c.Context(), &in)
	return updated(c, found, err, "precio de compra", &in)
}

// DeletePurchase DELETE /api/purchase-prices/:id
func (h *PriceHandler) DeletePurchase(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeletePurchasePrice(c.Context(), id)
	return done(c, found, err, "precio de compra")
}

// ListSale GET /api/sale-prices?search=&category=
func (h *PriceHandler) ListSale(c *fiber.Ctx) error {
	list, err := h.repo.ListSalePrices(c.Context(), repository.SalePriceFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// CreateSale POST /api/sale-prices (el margen se recalcula).
func (h *PriceHandler) CreateSale(c *fiber.Ctx) error {
	var in entity.SalePrice
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.repo.CreateSalePrice(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// UpdateSale PUT /api/sale-prices/:id
func (h *PriceHandler) UpdateSale(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.SalePrice
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	found, err := h.repo.UpdateSalePrice(c.Context(), &in)
	return updated(c, found, err, "precio de venta", &in)
}

// DeleteSale DELETE /api/sale-prices/:id
func (h *PriceHandler) DeleteSale(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeleteSalePrice(c.Context(), id)
	return done(c, found, err, "precio de venta")
}
