package workflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/application/workflow"
	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

func pendingReimbursement() *entity.EmployeeReimbursement {
	return &entity.EmployeeReimbursement{
		ID: 9, EmployeeID: 2, Amount: dec("35.40"), Description: "Courses marché",
		Status: entity.ReimbursementPending, RequestDate: time.Now(),
	}
}

func TestReimbursement_AprobarYPagar(t *testing.T) {
	store := &mockReimbursements{}
	w := workflow.NewReimbursementWorkflow(store, logger.Nop())
	ctx := context.Background()

	store.On("UpdateReimbursement", ctx, mock.MatchedBy(func(r *entity.EmployeeReimbursement) bool {
		return r.Status == entity.ReimbursementApproved && r.ApprovedDate != nil
	})).Return(true, nil).Once()
	store.On("UpdateReimbursement", ctx, mock.MatchedBy(func(r *entity.EmployeeReimbursement) bool {
		return r.Status == entity.ReimbursementPaid && r.PaidDate != nil
	})).Return(true, nil).Once()

	r := pendingReimbursement()
	ok, err := w.Approve(ctx, r)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ReimbursementApproved, r.Status)
	assert.NotNil(t, r.ApprovedDate)

	ok, err = w.Pay(ctx, r)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ReimbursementPaid, r.Status)
	assert.Empty(t, workflow.AllowedTransitions(r))
	store.AssertExpectations(t)
}

func TestReimbursement_TransicionInvalidaNoPersiste(t *testing.T) {
	store := &mockReimbursements{}
	w := workflow.NewReimbursementWorkflow(store, logger.Nop())
	ctx := context.Background()

	r := pendingReimbursement()
	ok, err := w.Pay(ctx, r)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.ReimbursementPending, r.Status)
	assert.Nil(t, r.PaidDate)

	rejected := pendingReimbursement()
	rejected.Status = entity.ReimbursementRejected
	_, err = w.Approve(ctx, rejected)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	store.AssertNotCalled(t, "UpdateReimbursement", mock.Anything, mock.Anything)
}

func TestReimbursement_FalloDelBackendNoMutaElValor(t *testing.T) {
	store := &mockReimbursements{}
	w := workflow.NewReimbursementWorkflow(store, logger.Nop())
	ctx := context.Background()
	store.On("UpdateReimbursement", ctx, mock.Anything).Return(false, domain.ErrUnavailable).Once()

	r := pendingReimbursement()
	ok, err := w.Reject(ctx, r)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, entity.ReimbursementPending, r.Status)
}

func TestReimbursement_InexistenteDevuelveFalse(t *testing.T) {
	store := &mockReimbursements{}
	w := workflow.NewReimbursementWorkflow(store, logger.Nop())
	ctx := context.Background()
	store.On("UpdateReimbursement", ctx, mock.Anything).Return(false, nil).Once()

	r := pendingReimbursement()
	ok, err := w.Reject(ctx, r)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, entity.ReimbursementPending, r.Status)
}

func TestAllowedTransitions(t *testing.T) {
	r := pendingReimbursement()
	assert.Equal(t, []string{entity.ReimbursementApproved, entity.ReimbursementRejected}, workflow.AllowedTransitions(r))
	r.Status = entity.ReimbursementApproved
	assert.Equal(t, []string{entity.ReimbursementPaid}, workflow.AllowedTransitions(r))
}
