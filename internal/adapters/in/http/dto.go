package http

import (
	"encoding/json"
	"time"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Amounts travel as JSON numbers and are parsed into exact decimals.

type Item struct {
	ProductID string      `json:"productId"`
	Quantity  int         `json:"quantity"`
	Price     json.Number `json:"price"`
}

type NewOrder struct {
	Items []Item `json:"items"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type NewPayment struct {
	Amount        json.Number `json:"amount"`
	PaymentMethod string      `json:"paymentMethod"`
}

type Order struct {
	ID        string      `json:"id"`
	Items     []Item      `json:"items"`
	Total     json.Number `json:"total"`
	TotalPaid json.Number `json:"totalPaid"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type Payment struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"orderId"`
	Amount        json.Number `json:"amount"`
	PaidAt        time.Time   `json:"paidAt"`
	PaymentMethod string      `json:"paymentMethod"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrder(resp queries.OrderResponse) Order {
	items := make([]Item, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     toNumber(item.Price),
		})
	}

	return Order{
		ID:        resp.ID,
		Items:     items,
		Total:     toNumber(resp.Total),
		TotalPaid: toNumber(resp.TotalPaid),
		Status:    resp.Status.String(),
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}

func toPayment(resp queries.PaymentResponse) Payment {
	return Payment{
		ID:            resp.ID,
		OrderID:       resp.OrderID,
		Amount:        toNumber(resp.Amount),
		PaidAt:        resp.PaidAt,
		PaymentMethod: resp.Method,
	}
}

func toNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
