package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// SweepPaidOrdersCommandHandler promotes fully paid PENDING orders to PROCESSING.
//
// Candidates come from a status listing; each one is then re-read under its
// lock, so an order cancelled, overridden or promoted since the listing is
// skipped instead of overwritten. Sweeping twice with no new payments promotes nothing.
type SweepPaidOrdersCommandHandler struct {
	ledger  ports.Ledger
	locker  ports.OrderLocker
	clock   kernel.Clock
	settler services.OrderSettler
}

func NewSweepPaidOrdersCommandHandler(
	ledger ports.Ledger,
	locker ports.OrderLocker,
	clock kernel.Clock,
) SweepPaidOrdersCommandHandler {
	return SweepPaidOrdersCommandHandler{
		ledger:  ledger,
		locker:  locker,
		clock:   clock,
		settler: services.NewOrderSettler(),
	}
}

// Handle returns the orders promoted by this sweep, in listing order.
// It stops at the first storage error; orders promoted before it stay promoted.
func (h *SweepPaidOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd SweepPaidOrdersCommand,
) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pending := order.Pending
	candidates, err := h.ledger.ListByStatus(ctx, &pending)
	if err != nil {
		return nil, err
	}

	promoted := make([]*order.Order, 0)
	for _, candidate := range h.settler.SelectSettled(candidates) {
		o, promoteErr := h.promote(ctx, candidate.ID())
		if promoteErr != nil {
			return promoted, promoteErr
		}
		if o != nil {
			promoted = append(promoted, o)
		}
	}

	return promoted, nil
}

// promote returns nil without error when the order no longer qualifies.
func (h *SweepPaidOrdersCommandHandler) promote(ctx context.Context, orderID string) (*order.Order, error) {
	var promoted *order.Order
	err := withOrderLock(h.locker, orderID, func() error {
		o, ok, err := h.ledger.Get(ctx, orderID)
		if err != nil || !ok {
			return err
		}

		err = h.settler.Settle(o, h.clock.Now())
		if errors.Is(err, services.ErrOrderNotSettled) {
			return nil
		}
		if err != nil {
			return err
		}

		if err = h.ledger.Put(ctx, o); err != nil {
			return err
		}

		promoted = o
		return nil
	})

	return promoted, err
}
