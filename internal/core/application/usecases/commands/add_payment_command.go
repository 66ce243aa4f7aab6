package commands

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddPaymentCommandIsNotConstructed = errors.New(
		"AddPaymentCommand must be created via NewAddPaymentCommand constructor",
	)
)

// AddPaymentCommand records funds toward an order.
//
// The amount is checked against the order by the handler, not here: a payment
// against a non-pending order is a conflict whatever its amount.
//
// Example:
//
//	cmd, _ := NewAddPaymentCommand(orderID, decimal.NewFromInt(4), "card")
//	payment, err := handler.Handle(ctx, cmd)
type AddPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID string
	amount  decimal.Decimal
	method  string

	guard guard.ConstructorGuard
}

// NewAddPaymentCommand builds the command. An empty method is recorded as "unknown".
func NewAddPaymentCommand(orderID string, amount decimal.Decimal, method string) (AddPaymentCommand, error) {
	cmd := AddPaymentCommand{
		amount: amount,
		method: method,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddPaymentCommand{}, err
	}

	return cmd, nil
}

func (c AddPaymentCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentCommandIsNotConstructed)
}

func (c AddPaymentCommand) OrderID() string {
	return c.orderID
}

func (c AddPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c AddPaymentCommand) Method() string {
	return c.method
}

func (c *AddPaymentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}
