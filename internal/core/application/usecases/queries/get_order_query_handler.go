package queries

import (
	"context"

	"orderflow/internal/core/ports"
)

// GetOrderQueryHandler reads a single order snapshot from the ledger.
type GetOrderQueryHandler struct {
	ledger ports.Ledger
}

func NewGetOrderQueryHandler(ledger ports.Ledger) GetOrderQueryHandler {
	return GetOrderQueryHandler{ledger: ledger}
}

// Handle reports found=false for an unknown id; absence is not an error here.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, bool, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, false, err
	}

	o, ok, err := h.ledger.Get(ctx, query.OrderID())
	if err != nil || !ok {
		return OrderResponse{}, false, err
	}

	return NewOrderResponse(o), true, nil
}
