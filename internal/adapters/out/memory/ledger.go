// Package memory provides the process-local implementation of ports.Ledger.
// Nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"orderflow/internal/core/domain/model/order"
)

// Ledger keeps orders and their payments in memory.
//
// The RWMutex guards only the maps themselves. Read-modify-write sequences on
// a single order must additionally hold that order's lock (see ports.OrderLocker).
type Ledger struct {
	mu       sync.RWMutex
	orders   map[string]*order.Order
	sequence []string
	payments map[string][]order.Payment
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		orders:   make(map[string]*order.Order),
		payments: make(map[string][]order.Payment),
	}
}

// Put stores a copy of o, replacing any order with the same id.
// Writes never fail: they ignore ctx cancellation and leave validation to the caller.
func (l *Ledger) Put(_ context.Context, o *order.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.orders[o.ID()]; !exists {
		l.sequence = append(l.sequence, o.ID())
	}
	l.orders[o.ID()] = o.Clone()
	return nil
}

// Get returns a copy of the stored order.
func (l *Ledger) Get(ctx context.Context, id string) (*order.Order, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	o, ok := l.orders[id]
	if !ok {
		return nil, false, nil
	}
	return o.Clone(), true, nil
}

// ListByStatus returns copies of matching orders in insertion order.
func (l *Ledger) ListByStatus(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*order.Order, 0, len(l.sequence))
	for _, id := range l.sequence {
		o := l.orders[id]
		if status != nil && o.Status() != *status {
			continue
		}
		result = append(result, o.Clone())
	}
	return result, nil
}

// AppendPayment adds p to the payment history of p.OrderID(), starting the
// history on first use. Order existence is not checked.
func (l *Ledger) AppendPayment(_ context.Context, p order.Payment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.payments[p.OrderID()] = append(l.payments[p.OrderID()], p)
	return nil
}

// ListPayments returns a copy of the payment history for orderID.
func (l *Ledger) ListPayments(ctx context.Context, orderID string) ([]order.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	stored := l.payments[orderID]
	result := make([]order.Payment, len(stored))
	copy(result, stored)
	return result, nil
}
