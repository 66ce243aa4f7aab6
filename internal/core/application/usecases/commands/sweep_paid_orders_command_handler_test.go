package commands_test

import (
	"errors"
	"testing"

	"orderflow/internal/adapters/out/locker"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storeOrder(t *testing.T, ledger *memory.Ledger, id string, total, paid int64, status order.Status) {
	t.Helper()
	o := newPendingOrder(t, id, total)
	if paid > 0 {
		require.NoError(t, o.ApplyPayment(decimal.NewFromInt(paid), fixedNow))
	}
	if status != order.Pending {
		require.NoError(t, o.ChangeStatus(status, fixedNow))
	}
	require.NoError(t, ledger.Put(t.Context(), o))
}

func TestSweepPaidOrdersCommandHandler_Handle_PromotesOnlyFullyPaidPending(t *testing.T) {
	// Given
	ctx := t.Context()
	ledger := memory.NewLedger()
	storeOrder(t, ledger, "paid", 10, 10, order.Pending)
	storeOrder(t, ledger, "partial", 10, 4, order.Pending)
	storeOrder(t, ledger, "unpaid", 10, 0, order.Pending)
	storeOrder(t, ledger, "free", 0, 0, order.Pending)
	storeOrder(t, ledger, "shipped", 10, 10, order.Shipped)
	h := commands.NewSweepPaidOrdersCommandHandler(ledger, locker.NewOrderLocker(), fixedClock())

	// When
	promoted, err := h.Handle(ctx, commands.NewSweepPaidOrdersCommand())

	// Then
	require.NoError(t, err)
	require.Len(t, promoted, 2)
	assert.Equal(t, "paid", promoted[0].ID())
	assert.Equal(t, "free", promoted[1].ID())
	for _, id := range []string{"paid", "free"} {
		o, _, _ := ledger.Get(ctx, id)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, fixedNow, o.UpdatedAt())
	}
	for id, want := range map[string]order.Status{"partial": order.Pending, "unpaid": order.Pending, "shipped": order.Shipped} {
		o, _, _ := ledger.Get(ctx, id)
		assert.Equal(t, want, o.Status(), id)
	}
}

func TestSweepPaidOrdersCommandHandler_Handle_IsIdempotent(t *testing.T) {
	ctx := t.Context()
	ledger := memory.NewLedger()
	storeOrder(t, ledger, "paid", 10, 10, order.Pending)
	h := commands.NewSweepPaidOrdersCommandHandler(ledger, locker.NewOrderLocker(), fixedClock())

	first, err := h.Handle(ctx, commands.NewSweepPaidOrdersCommand())
	require.NoError(t, err)
	second, err := h.Handle(ctx, commands.NewSweepPaidOrdersCommand())
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Empty(t, second)
	assert.NotNil(t, second)
}

func TestSweepPaidOrdersCommandHandler_Handle_SkipsOrderChangedSinceListing(t *testing.T) {
	// Given: the listing still shows the order as pending, but a fresh read sees it cancelled
	ctx := t.Context()
	listed := newPendingOrder(t, "order-1", 0)
	fresh := newPendingOrder(t, "order-1", 0)
	require.NoError(t, fresh.ChangeStatus(order.Cancelled, fixedNow))

	ledger := new(MockLedger)
	lock := new(MockOrderLocker)
	ledger.On("ListByStatus", ctx, mock.Anything).Return([]*order.Order{listed}, nil).Once()
	lock.On("Lock", "order-1").Return().Once()
	ledger.On("Get", ctx, "order-1").Return(fresh, true, nil).Once()
	lock.On("Unlock", "order-1").Return(nil).Once()
	h := commands.NewSweepPaidOrdersCommandHandler(ledger, lock, fixedClock())

	// When
	promoted, err := h.Handle(ctx, commands.NewSweepPaidOrdersCommand())

	// Then
	require.NoError(t, err)
	assert.Empty(t, promoted)
	ledger.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	lock.AssertExpectations(t)
}

func TestSweepPaidOrdersCommandHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()
	ledger := new(MockLedger)
	ledger.On("ListByStatus", ctx, mock.Anything).Return(nil, errors.New("list error")).Once()
	h := commands.NewSweepPaidOrdersCommandHandler(ledger, new(MockOrderLocker), fixedClock())

	_, err := h.Handle(ctx, commands.NewSweepPaidOrdersCommand())

	require.EqualError(t, err, "list error")
}

func TestSweepPaidOrdersCommandHandler_Handle_RequiresConstructedCommand(t *testing.T) {
	h := commands.NewSweepPaidOrdersCommandHandler(memory.NewLedger(), locker.NewOrderLocker(), fixedClock())

	_, err := h.Handle(t.Context(), commands.SweepPaidOrdersCommand{})

	assert.ErrorIs(t, err, commands.ErrSweepPaidOrdersCommandIsNotConstructed)
}
