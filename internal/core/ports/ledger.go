// Package ports defines the contracts between the order application layer and
// the infrastructure that stores orders and payments or serializes access to them.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// Ledger is the order and payment store.
//
// Implementations must hand out and accept copies: mutating an *order.Order
// returned by Get or ListByStatus never changes stored state until it is
// passed back to Put.
//
// Order existence and order invariants are the caller's concern; the ledger
// only stores what it is given.
type Ledger interface {
	// Put inserts or replaces an order, keyed by its id.
	// The first insertion fixes the order's position in listings.
	Put(ctx context.Context, o *order.Order) error

	// Get retrieves an order by id. The boolean is false when no order matches.
	Get(ctx context.Context, id string) (*order.Order, bool, error)

	// ListByStatus returns orders in insertion order. A nil status returns every order.
	ListByStatus(ctx context.Context, status *order.Status) ([]*order.Order, error)

	// AppendPayment adds a payment to its order's history, starting the history
	// on first use. It does not check that the order exists.
	AppendPayment(ctx context.Context, p order.Payment) error

	// ListPayments returns the payments of an order in the order they were recorded.
	// An order without payments yields an empty slice.
	ListPayments(ctx context.Context, orderID string) ([]order.Payment, error)
}
