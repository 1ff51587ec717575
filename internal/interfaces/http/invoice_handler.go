package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// InvoiceHandler facturas a clientes (protegido).
type InvoiceHandler struct {
	repo repository.InvoiceRepository
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(repo repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{repo: repo}
}

// List godoc
// @Summary      Listar facturas con sus líneas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Número o cliente"
// @Param        status     query  string  false  "Draft | Pending | Paid | Overdue | Cancelled"
// @Param        startDate  query  string  false  "Emitidas desde (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Emitidas hasta (YYYY-MM-DD, inclusive)"
// @Success      200  {object}  dto.Envelope[[]entity.Invoice]
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	f := repository.InvoiceFilter{Search: c.Query("search"), Status: c.Query("status")}
	var err error
	if f.StartDate, err = queryDate(c, "startDate"); err != nil {
		return badRequest(c, err.Error())
	}
	if f.EndDate, err = queryDate(c, "endDate"); err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.repo.ListInvoices(c.Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Items GET /api/invoices/:id/items
func (h *InvoiceHandler) Items(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	items, err := h.repo.ListInvoiceItems(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, items)
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Invoice  true  "Cabecera y líneas"
// @Success      201   {object}  dto.Envelope[entity.Invoice]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in entity.Invoice
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.CreatedBy == 0 {
		in.CreatedBy = GetUserID(c)
	}
	out, err := h.repo.CreateInvoice(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/invoices/:id (reemplaza cabecera y líneas).
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.Invoice
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	found, err := h.repo.UpdateInvoice(c.Context(), &in)
	return updated(c, found, err, "factura", &in)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeleteInvoice(c.Context(), id)
	return done(c, found, err, "factura")
}
