package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/application/workflow"
	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

func TestRecord_MovimientoValido(t *testing.T) {
	store := &mockMovements{}
	w := workflow.NewInventoryWorkflow(store, logger.Nop())
	ctx := context.Background()

	m := &entity.InventoryMovement{ProductID: 4, Quantity: dec("2.5"), Type: entity.MovementTypeOut, UserID: 1, Reason: "Service midi"}
	store.On("CreateInventoryMovement", ctx, m).Return(&entity.InventoryMovement{ID: 11, ProductID: 4}, nil).Once()

	created, err := w.Record(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	store.AssertExpectations(t)
}

func TestRecord_InvalidoNoLlegaAlBackend(t *testing.T) {
	store := &mockMovements{}
	w := workflow.NewInventoryWorkflow(store, logger.Nop())

	_, err := w.Record(context.Background(), &entity.InventoryMovement{ProductID: 4, Quantity: dec("0"), Type: entity.MovementTypeIn})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = w.Record(context.Background(), &entity.InventoryMovement{ProductID: 4, Quantity: dec("1"), Type: "Transfer"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	store.AssertNotCalled(t, "CreateInventoryMovement", mock.Anything, mock.Anything)
}

func TestRecord_StockInsuficiente(t *testing.T) {
	store := &mockMovements{}
	w := workflow.NewInventoryWorkflow(store, logger.Nop())
	ctx := context.Background()
	store.On("CreateInventoryMovement", ctx, mock.Anything).Return(nil, domain.ErrInsufficientStock).Once()

	created, err := w.Record(ctx, &entity.InventoryMovement{ProductID: 4, Quantity: dec("99"), Type: entity.MovementTypeOut})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
