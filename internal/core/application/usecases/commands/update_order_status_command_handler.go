package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies the administrative status override.
// No transition order is enforced: DELIVERED → PENDING is accepted like any other change.
type UpdateOrderStatusCommandHandler struct {
	ledger ports.Ledger
	locker ports.OrderLocker
	clock  kernel.Clock
}

func NewUpdateOrderStatusCommandHandler(
	ledger ports.Ledger,
	locker ports.OrderLocker,
	clock kernel.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		ledger: ledger,
		locker: locker,
		clock:  clock,
	}
}

// Handle returns the updated order, or a not-found error for an unknown id.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *order.Order
	err := withOrderLock(h.locker, cmd.OrderID(), func() error {
		o, err := getExistingOrder(ctx, h.ledger, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
			return err
		}

		if err = h.ledger.Put(ctx, o); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
