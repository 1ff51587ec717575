package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// TransactionHandler libro de ventas y gastos (protegido).
type TransactionHandler struct {
	repo repository.TransactionRepository
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(repo repository.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto en descripción o categoría"
// @Param        type      query  string  false  "Sale | Expense"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {object}  dto.Envelope[[]entity.Transaction]
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.ListTransactions(c.Context(), repository.TransactionFilter{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Transaction  true  "Venta o gasto"
// @Success      201   {object}  dto.Envelope[entity.Transaction]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in entity.Transaction
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.UserID == 0 {
		in.UserID = GetUserID(c)
	}
	out, err := h.repo.CreateTransaction(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update godoc
// @Summary      Actualizar transacción
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  entity.Transaction  true  "Datos"
// @Success      200   {object}  dto.Envelope[entity.Transaction]
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.Transaction
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	if in.UserID == 0 {
		in.UserID = GetUserID(c)
	}
	found, err := h.repo.UpdateTransaction(c.Context(), &in)
	return updated(c, found, err, "transacción", &in)
}

// Delete godoc
// @Summary      Eliminar transacción
// @Tags         transactions
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.Envelope[any]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeleteTransaction(c.Context(), id)
	return done(c, found, err, "transacción")
}
