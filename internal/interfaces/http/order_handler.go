package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// OrderHandler pedidos a proveedores (protegido).
type OrderHandler struct {
	repo repository.OrderRepository
}

// NewOrderHandler construye el handler.
func NewOrderHandler(repo repository.OrderRepository) *OrderHandler {
	return &OrderHandler{repo: repo}
}

// List godoc
// @Summary      Listar pedidos con sus líneas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Número o proveedor"
// @Param        status  query  string  false  "Pending | Delivered | Cancelled"
// @Success      200  {object}  dto.Envelope[[]entity.Order]
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.ListOrders(c.Context(), repository.OrderFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Items GET /api/orders/:id/items
func (h *OrderHandler) Items(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	items, err := h.repo.ListOrderItems(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, items)
}

// Create godoc
// @Summary      Crear pedido
// @Description  Los totales se recalculan a partir de las líneas.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Order  true  "Cabecera y líneas"
// @Success      201   {object}  dto.Envelope[entity.Order]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in entity.Order
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.UserID == 0 {
		in.UserID = GetUserID(c)
	}
	out, err := h.repo.CreateOrder(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/orders/:id (reemplaza cabecera y líneas).
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.Order
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	if in.UserID == 0 {
		in.UserID = GetUserID(c)
	}
	found, err := h.repo.UpdateOrder(c.Context(), &in)
	return updated(c, found, err, "pedido", &in)
}

// Delete DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeleteOrder(c.Context(), id)
	return done(c, found, err, "pedido")
}

// Deliver godoc
// @Summary      Entregar pedido
// @Description  Marca el pedido como entregado e ingresa sus líneas al inventario, todo o nada.
// @Description  Los movimientos se atribuyen al usuario del token.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Success      200   {object}  dto.Envelope[any]
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/deliver [post]
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeliverOrder(c.Context(), id, GetUserID(c))
	return done(c, found, err, "pedido")
}
