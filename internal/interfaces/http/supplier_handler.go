package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// SupplierHandler proveedores (protegido).
type SupplierHandler struct {
	repo repository.SupplierRepository
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(repo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

// List GET /api/suppliers?search=&includeInactive=
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.ListSuppliers(c.Context(), repository.SupplierFilter{
		Search:          c.Query("search"),
		IncludeInactive: c.QueryBool("includeInactive"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Create POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in entity.Supplier
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.repo.CreateSupplier(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.Supplier
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	found, err := h.repo.UpdateSupplier(c.Context(), &in)
	return updated(c, found, err, "proveedor", &in)
}

// Delete DELETE /api/suppliers/:id (borrado lógico)
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeleteSupplier(c.Context(), id)
	return done(c, found, err, "proveedor")
}
