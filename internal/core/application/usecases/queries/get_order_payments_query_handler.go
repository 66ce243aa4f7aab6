package queries

import (
	"context"

	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// GetOrderPaymentsQueryHandler distinguishes "no payments yet" (empty slice)
// from "no such order" (not-found error).
type GetOrderPaymentsQueryHandler struct {
	ledger ports.Ledger
}

func NewGetOrderPaymentsQueryHandler(ledger ports.Ledger) GetOrderPaymentsQueryHandler {
	return GetOrderPaymentsQueryHandler{ledger: ledger}
}

func (h GetOrderPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	_, ok, err := h.ledger.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	payments, err := h.ledger.ListPayments(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, NewPaymentResponse(p))
	}

	return responses, nil
}
