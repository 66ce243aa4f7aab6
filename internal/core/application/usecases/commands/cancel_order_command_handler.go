package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// CancelOrderCommandHandler moves a PENDING order without payments to CANCELLED.
// Any other status, or any recorded payment, is a conflict.
type CancelOrderCommandHandler struct {
	ledger ports.Ledger
	locker ports.OrderLocker
	clock  kernel.Clock
}

func NewCancelOrderCommandHandler(
	ledger ports.Ledger,
	locker ports.OrderLocker,
	clock kernel.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		ledger: ledger,
		locker: locker,
		clock:  clock,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var cancelled *order.Order
	err := withOrderLock(h.locker, cmd.OrderID(), func() error {
		o, err := getExistingOrder(ctx, h.ledger, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.Cancel(h.clock.Now()); err != nil {
			return err
		}

		if err = h.ledger.Put(ctx, o); err != nil {
			return err
		}

		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}
