package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP de artículos y movimientos de inventario (protegido).
type InventoryHandler struct {
	repo repository.InventoryRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(repo repository.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{repo: repo}
}

// List godoc
// @Summary      Listar artículos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Nombre o proveedor"
// @Param        category  query  string  false  "Raw material | Prepared dish"
// @Param        lowStock  query  bool    false  "Solo cantidad ≤ umbral"
// @Success      200  {object}  dto.Envelope[[]entity.InventoryItem]
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	low, err := queryBool(c, "lowStock")
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.repo.ListInventory(c.Context(), repository.InventoryFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		LowStock: low,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// Create godoc
// @Summary      Crear artículo de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.InventoryItem  true  "Artículo con cantidad inicial"
// @Success      201   {object}  dto.Envelope[entity.InventoryItem]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in entity.InventoryItem
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.repo.CreateInventoryItem(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update godoc
// @Summary      Actualizar artículo de inventario
// @Description  La cantidad no se modifica por esta vía: usar movimientos.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  entity.InventoryItem  true  "Datos descriptivos"
// @Success      200   {object}  dto.Envelope[entity.InventoryItem]
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	var in entity.InventoryItem
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	found, err := h.repo.UpdateInventoryItem(c.Context(), &in)
	return updated(c, found, err, "artículo", &in)
}

// Delete DELETE /api/inventory/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, valid := paramID(c)
	if !valid {
		return badRequest(c, "id inválido")
	}
	found, err := h.repo.DeleteInventoryItem(c.Context(), id)
	return done(c, found, err, "artículo")
}

// ListMovements godoc
// @Summary      Últimos movimientos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  query  int  false  "Artículo"
// @Success      200  {object}  dto.Envelope[[]entity.InventoryMovement]
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productID, err := queryInt64(c, "productId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	list, err := h.repo.ListInventoryMovements(c.Context(), repository.MovementFilter{ProductID: productID})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, list)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.InventoryMovement  true  "productId, quantity, type (In|Out), reason"
// @Success      201   {object}  dto.Envelope[entity.InventoryMovement]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in entity.InventoryMovement
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.UserID = GetUserID(c)
	out, err := h.repo.CreateInventoryMovement(c.Context(), &in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}
