// Package queries contains read-only operations over the order ledger.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers never lock: every ledger read returns an independent snapshot.
package queries

import (
	"time"

	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderItemResponse is a single order line as seen by readers.
type OrderItemResponse struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// OrderResponse is a read-only snapshot of an order.
type OrderResponse struct {
	ID        string
	Items     []OrderItemResponse
	Total     decimal.Decimal
	TotalPaid decimal.Decimal
	Status    order.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentResponse is a recorded payment as seen by readers.
type PaymentResponse struct {
	ID      string
	OrderID string
	Amount  decimal.Decimal
	PaidAt  time.Time
	Method  string
}

// NewOrderResponse maps an order aggregate to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderResponse{
		ID:        o.ID(),
		Items:     items,
		Total:     o.Total(),
		TotalPaid: o.TotalPaid(),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

// NewPaymentResponse maps a payment to its read model.
func NewPaymentResponse(p order.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      p.ID(),
		OrderID: p.OrderID(),
		Amount:  p.Amount(),
		PaidAt:  p.PaidAt(),
		Method:  p.Method(),
	}
}
