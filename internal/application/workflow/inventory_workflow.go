package workflow

import (
	"context"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

// InventoryWorkflow registro de entradas y salidas de stock.
type InventoryWorkflow struct {
	store MovementStore
	log   *logger.Logger
}

func NewInventoryWorkflow(store MovementStore, log *logger.Logger) *InventoryWorkflow {
	return &InventoryWorkflow{store: store, log: log.Component("inventory_workflow")}
}

// Record valida el movimiento y lo registra; el backend ajusta la cantidad del artículo
// en la misma operación.
func (w *InventoryWorkflow) Record(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error) {
	if err := entity.Validate(m); err != nil {
		return nil, err
	}
	created, err := w.store.CreateInventoryMovement(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("movimiento %s de %s sobre artículo %d: %w", m.Type, m.Quantity, m.ProductID, err)
	}
	w.log.Debug().Int64("product_id", m.ProductID).Str("type", m.Type).Str("quantity", m.Quantity.String()).Msg("movimiento registrado")
	return created, nil
}
