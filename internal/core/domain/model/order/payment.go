package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod labels payments recorded without a method.
const DefaultPaymentMethod = "unknown"

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is an immutable record of funds applied toward an order.
// It references its order by id; the order does not hold its payments.
type Payment struct {
	id      string
	orderID string
	amount  decimal.Decimal
	paidAt  time.Time
	method  string

	guard guard.ConstructorGuard
}

// NewPayment builds a payment record. amount must be strictly positive; an empty
// method becomes DefaultPaymentMethod. Balance checks belong to Order.ValidatePayment.
func NewPayment(id, orderID string, amount decimal.Decimal, method string, paidAt time.Time) (Payment, error) {
	p := Payment{
		paidAt: paidAt,
		method: method,
		guard:  guard.NewConstructorGuard(),
	}
	if p.method == "" {
		p.method = DefaultPaymentMethod
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
	); err != nil {
		return Payment{}, err
	}

	return p, nil
}

func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p Payment) ID() string {
	return p.id
}

func (p Payment) OrderID() string {
	return p.orderID
}

func (p Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p Payment) Method() string {
	return p.method
}

func (p *Payment) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("payment.id")
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("payment.orderId")
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}
	p.amount = amount
	return nil
}
