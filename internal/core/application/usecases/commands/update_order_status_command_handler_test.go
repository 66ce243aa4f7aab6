package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, id string, total int64) *order.Order {
	t.Helper()
	item, err := order.NewItem("p1", 1, decimal.NewFromInt(total))
	require.NoError(t, err)
	o, err := order.NewOrder(id, []order.Item{item}, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("parses exact literal", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand("order-1", "SHIPPED")

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, cmd.Status())
		assert.Equal(t, "order-1", cmd.OrderID())
	})

	t.Run("rejects unknown and lower-case literals", func(t *testing.T) {
		for _, s := range []string{"shipped", "LOST", ""} {
			_, err := commands.NewUpdateOrderStatusCommand("order-1", s)

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		}
	})

	t.Run("requires order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("", "SHIPPED")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	stored := newPendingOrder(t, "order-1", 10)
	ledger := new(MockLedger)
	locker := new(MockOrderLocker)
	mock.InOrder(
		locker.On("Lock", "order-1").Return().Once(),
		ledger.On("Get", ctx, "order-1").Return(stored, true, nil).Once(),
		ledger.On("Put", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Delivered
		})).Return(nil).Once(),
		locker.On("Unlock", "order-1").Return(nil).Once(),
	)
	h := commands.NewUpdateOrderStatusCommandHandler(ledger, locker, fixedClock())
	cmd, err := commands.NewUpdateOrderStatusCommand("order-1", "DELIVERED")
	require.NoError(t, err)

	// When
	updated, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, updated.Status())
	assert.Equal(t, fixedNow, updated.UpdatedAt())
	ledger.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	ledger := new(MockLedger)
	locker := new(MockOrderLocker)
	locker.On("Lock", "missing").Return().Once()
	ledger.On("Get", ctx, "missing").Return(nil, false, nil).Once()
	locker.On("Unlock", "missing").Return(nil).Once()
	h := commands.NewUpdateOrderStatusCommandHandler(ledger, locker, fixedClock())
	cmd, _ := commands.NewUpdateOrderStatusCommand("missing", "SHIPPED")

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	ledger.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	locker.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_UnlockErrorSurfaces(t *testing.T) {
	ctx := t.Context()
	ledger := new(MockLedger)
	locker := new(MockOrderLocker)
	locker.On("Lock", "order-1").Return().Once()
	ledger.On("Get", ctx, "order-1").Return(newPendingOrder(t, "order-1", 10), true, nil).Once()
	ledger.On("Put", ctx, mock.Anything).Return(nil).Once()
	locker.On("Unlock", "order-1").Return(errors.New("unlock error")).Once()
	h := commands.NewUpdateOrderStatusCommandHandler(ledger, locker, fixedClock())
	cmd, _ := commands.NewUpdateOrderStatusCommand("order-1", "SHIPPED")

	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "unlock error")
}
