package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// CreateOrderCommandHandler places new orders in PENDING with nothing paid.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(ledger, kernel.NewSystemClock(), kernel.NewUUIDGenerator())
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	ledger ports.Ledger
	clock  kernel.Clock
	ids    kernel.IDGenerator
}

func NewCreateOrderCommandHandler(
	ledger ports.Ledger,
	clock kernel.Clock,
	ids kernel.IDGenerator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		ledger: ledger,
		clock:  clock,
		ids:    ids,
	}
}

// Handle assigns a fresh id, stamps both timestamps and stores the order.
// A new id is never shared, so no lock is needed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(h.ids.NewID(), cmd.Items(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = h.ledger.Put(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
