package commands_test

import (
	"testing"

	"orderflow/internal/adapters/out/locker"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_RequiresID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand("")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T) (*memory.Ledger, commands.CancelOrderCommandHandler) {
		t.Helper()
		ledger := memory.NewLedger()
		require.NoError(t, ledger.Put(t.Context(), newPendingOrder(t, "order-1", 10)))
		return ledger, commands.NewCancelOrderCommandHandler(ledger, locker.NewOrderLocker(), fixedClock())
	}

	t.Run("cancels unpaid pending order", func(t *testing.T) {
		// Given
		ctx := t.Context()
		ledger, h := setup(t)
		cmd, _ := commands.NewCancelOrderCommand("order-1")

		// When
		cancelled, err := h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cancelled.Status())
		stored, _, _ := ledger.Get(ctx, "order-1")
		assert.Equal(t, order.Cancelled, stored.Status())
		assert.Equal(t, fixedNow, stored.UpdatedAt())
	})

	t.Run("conflicts when order has a payment", func(t *testing.T) {
		ctx := t.Context()
		ledger, h := setup(t)
		o, _, _ := ledger.Get(ctx, "order-1")
		require.NoError(t, o.ApplyPayment(decimal.NewFromInt(1), fixedNow))
		require.NoError(t, ledger.Put(ctx, o))
		cmd, _ := commands.NewCancelOrderCommand("order-1")

		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		stored, _, _ := ledger.Get(ctx, "order-1")
		assert.Equal(t, order.Pending, stored.Status())
	})

	t.Run("conflicts when order is not pending", func(t *testing.T) {
		ctx := t.Context()
		ledger, h := setup(t)
		o, _, _ := ledger.Get(ctx, "order-1")
		require.NoError(t, o.ChangeStatus(order.Shipped, fixedNow))
		require.NoError(t, ledger.Put(ctx, o))
		cmd, _ := commands.NewCancelOrderCommand("order-1")

		_, err := h.Handle(ctx, cmd)

		assert.True(t, errs.IsConflict(err))
	})

	t.Run("not found for unknown order", func(t *testing.T) {
		_, h := setup(t)
		cmd, _ := commands.NewCancelOrderCommand("missing")

		_, err := h.Handle(t.Context(), cmd)

		assert.True(t, errs.IsNotFound(err))
	})
}
