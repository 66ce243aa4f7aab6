package services

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/order"
)

// ErrOrderNotSettled is returned when an order is not a PENDING order whose balance is fully paid.
var ErrOrderNotSettled = errors.New("order is not settled")

// OrderSettler is a domain service for the reconciliation step that hands fully
// paid orders over to processing.
//
// Business rules:
//   - Only PENDING orders are considered
//   - An order is settled once totalPaid >= total (a zero-total order is settled at creation)
//   - Settling moves the order to PROCESSING and stamps updatedAt
//
// Example usage:
//
//	settler := services.NewOrderSettler()
//	for _, o := range settler.SelectSettled(pendingOrders) {
//	    if err := settler.Settle(o, clock.Now()); errors.Is(err, services.ErrOrderNotSettled) {
//	        continue // changed since it was selected
//	    }
//	}
type OrderSettler struct{}

func NewOrderSettler() OrderSettler {
	return OrderSettler{}
}

// IsSettled reports whether o is PENDING and fully paid.
func (s OrderSettler) IsSettled(o *order.Order) bool {
	return o.Validate() == nil && o.Status() == order.Pending && o.IsFullyPaid()
}

// SelectSettled returns the settled orders among orders, keeping their order.
func (s OrderSettler) SelectSettled(orders []*order.Order) []*order.Order {
	settled := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if s.IsSettled(o) {
			settled = append(settled, o)
		}
	}
	return settled
}

// Settle promotes a settled order to PROCESSING. Any other order yields ErrOrderNotSettled
// and is left untouched.
func (s OrderSettler) Settle(o *order.Order, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !s.IsSettled(o) {
		return ErrOrderNotSettled
	}

	return o.StartProcessing(now)
}
