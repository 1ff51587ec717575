package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// ReimbursementHandler reembolsos a empleados (protegido).
// Las transiciones de estado se validan en el cliente (workflow) antes del PUT.
type ReimbursementHandler struct {
	repo repository.ReimbursementRepository
}

// NewReimbursementHandler construye el handler.
func NewReimbursementHandler(repo repository.ReimbursementRepository) *ReimbursementHandler {
	return &ReimbursementHandler{repo: repo}
}

// List GET /api/reimbursements?search=&status=&employeeId=
func (h *ReimbursementHandler) List(c *fiber.Ctx) error {
	employeeID, err := queryInt64(c, "employeeId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.repo.ListReimbursements(c.Context(), repository.ReimbursementFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		EmployeeID: employeeID,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Create POST /api/reimbursements (estado inicial Pending si no se indica).
func (h *ReimbursementHandler) Create(c *fiber.Ctx) error {
	var in entity.EmployeeReimbursement
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.repo.CreateReimbursement(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/reimbursements/:id
func (h *ReimbursementHandler) Update(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.EmployeeReimbursement
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	found, err := h.repo.UpdateReimbursement(c.Context(), &in)
	return updated(c, found, err, "reembolso", &in)
}

// Delete DELETE /api/reimbursements/:id
func (h *ReimbursementHandler) Delete(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeleteReimbursement(c.Context(), id)
	return done(c, found, err, "reembolso")
}
