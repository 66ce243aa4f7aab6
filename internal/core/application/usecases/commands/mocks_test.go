package commands_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type MockLedger struct{ mock.Mock }

func (m *MockLedger) Put(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockLedger) Get(ctx context.Context, id string) (*order.Order, bool, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *MockLedger) ListByStatus(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockLedger) AppendPayment(ctx context.Context, p order.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLedger) ListPayments(ctx context.Context, orderID string) ([]order.Payment, error) {
	args := m.Called(ctx, orderID)
	payments, _ := args.Get(0).([]order.Payment)
	return payments, args.Error(1)
}

type MockOrderLocker struct{ mock.Mock }

func (m *MockOrderLocker) Lock(orderID string) {
	m.Called(orderID)
}

func (m *MockOrderLocker) Unlock(orderID string) error {
	args := m.Called(orderID)
	return args.Error(0)
}

func fixedClock() kernel.Clock {
	return kernel.ClockFunc(func() time.Time { return fixedNow })
}

// sequentialIDs yields prefix-1, prefix-2, ...
func sequentialIDs(prefix string) kernel.IDGenerator {
	var n atomic.Int64
	return kernel.IDGeneratorFunc(func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	})
}
