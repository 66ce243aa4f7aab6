package queries

import (
	"context"

	"orderflow/internal/core/ports"
)

// ListOrdersQueryHandler returns order snapshots in ledger insertion order.
type ListOrdersQueryHandler struct {
	ledger ports.Ledger
}

func NewListOrdersQueryHandler(ledger ports.Ledger) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{ledger: ledger}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.ledger.ListByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
