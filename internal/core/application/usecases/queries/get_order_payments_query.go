package queries

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrderPaymentsQueryIsNotConstructed = errors.New(
		"GetOrderPaymentsQuery must be created via NewGetOrderPaymentsQuery constructor",
	)
)

// GetOrderPaymentsQuery retrieves the payment history of an order, oldest first.
type GetOrderPaymentsQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderPaymentsQuery(orderID string) (GetOrderPaymentsQuery, error) {
	if orderID == "" {
		return GetOrderPaymentsQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderPaymentsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPaymentsQueryIsNotConstructed)
}

func (q GetOrderPaymentsQuery) OrderID() string {
	return q.orderID
}
