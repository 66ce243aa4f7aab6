package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a purchase: its lines, the fixed total, how much
// of it has been paid and where it is in the lifecycle.
//
// Order follows these invariants:
//   - id, items, total and createdAt never change after construction
//   - items is non-empty and every item passed NewItem validation
//   - 0 <= totalPaid <= total
//   - totalPaid only grows, and only while the order is Pending
//   - updatedAt moves on every mutation
type Order struct {
	id        string
	items     []Item
	total     decimal.Decimal
	totalPaid decimal.Decimal
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a Pending, unpaid order and computes its total as the sum of
// quantity × price over items.
//
// Example:
//
//	item, _ := order.NewItem("p1", 2, decimal.NewFromInt(3))
//	o, err := order.NewOrder(ids.NewID(), []order.Item{item}, clock.Now())
//	o.Total()  // 6
//	o.Status() // order.Pending
func NewOrder(id string, items []Item, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		totalPaid:     decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() string {
	return o.id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) TotalPaid() decimal.Decimal {
	return o.totalPaid
}

// Balance is the amount still owed: total − totalPaid.
func (o *Order) Balance() decimal.Decimal {
	return o.total.Sub(o.totalPaid)
}

// IsFullyPaid reports totalPaid >= total. A zero-total order is fully paid from the start.
func (o *Order) IsFullyPaid() bool {
	return o.totalPaid.GreaterThanOrEqual(o.total)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus is the administrative override: any valid status is accepted
// from any current status, including Cancelled.
//
// Returns:
//   - nil after setting the status and stamping updatedAt
//   - *errs.ValueIsInvalidError if status is Unknown or out of range; the order is unchanged
func (o *Order) ChangeStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = now
	return nil
}

// Cancel moves the order to Cancelled.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - No payment may have been applied (totalPaid == 0)
//
// Returns:
//   - nil on successful cancellation
//   - *errs.ObjectConflictError if the status is not Pending or money was collected
//
// Example:
//
//	if err := o.Cancel(clock.Now()); err != nil {
//	    return err
//	}
//	o.Status() // order.Cancelled
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if o.totalPaid.IsPositive() {
		return errs.NewObjectConflictError(
			"order",
			fmt.Sprintf("has recorded payments totalling %s and cannot be cancelled", o.totalPaid),
		)
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// ValidatePayment checks, without mutating, that amount can be applied now.
//
// Business rules, checked in this order:
//   - The order must be in Pending status
//   - amount must be greater than 0
//   - amount must not exceed Balance(); overpayment is rejected, never clamped
//
// Returns:
//   - nil if ApplyPayment would succeed
//   - *errs.ObjectConflictError if the order no longer accepts payments
//   - *errs.ValueIsInvalidError for a non-positive amount
//   - *errs.ValueIsOutOfRangeError for an overpayment
func (o *Order) ValidatePayment(amount decimal.Decimal) error {
	if err := o.status.ValidateAcceptsPayment(); err != nil {
		return err
	}

	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	if balance := o.Balance(); amount.GreaterThan(balance) {
		return errs.NewValueIsOutOfRangeError("amount", amount, decimal.Zero, balance)
	}

	return nil
}

// ApplyPayment adds amount to totalPaid after ValidatePayment succeeds and
// stamps updatedAt.
//
// The order stays Pending even when it becomes fully paid; the reconciliation
// sweep promotes it later.
//
// Example:
//
//	err := o.ApplyPayment(decimal.NewFromInt(4), clock.Now())
//	o.TotalPaid() // previous totalPaid + 4
func (o *Order) ApplyPayment(amount decimal.Decimal, now time.Time) error {
	if err := o.ValidatePayment(amount); err != nil {
		return err
	}

	o.totalPaid = o.totalPaid.Add(amount)
	o.updatedAt = now
	return nil
}

// StartProcessing promotes the order to Processing.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - The order must be fully paid (totalPaid >= total)
//
// Returns:
//   - nil on successful promotion
//   - *errs.ObjectConflictError naming the status or the outstanding balance otherwise
func (o *Order) StartProcessing(now time.Time) error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	if !o.IsFullyPaid() {
		return errs.NewObjectConflictError(
			"order",
			fmt.Sprintf("has outstanding balance %s", o.Balance()),
		)
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Clone returns an independent copy so stored snapshots never alias caller-held orders.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	clone := *o
	clone.items = o.Items()
	return &clone
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order.id")
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("an order needs at least one item"))
	}

	total := decimal.Zero
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, errs.NewValueIsInvalidErrorWithCause("items", err))
		}
		total = total.Add(item.Subtotal())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
