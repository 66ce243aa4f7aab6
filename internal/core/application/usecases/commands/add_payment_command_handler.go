package commands

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// AddPaymentCommandHandler applies a payment to a pending order.
//
// The balance check, the payment record and the totalPaid increment all happen
// under the order's lock, so concurrent payments on one order can never be
// accepted past its total. A fully paid order stays PENDING until the next sweep.
type AddPaymentCommandHandler struct {
	ledger ports.Ledger
	locker ports.OrderLocker
	clock  kernel.Clock
	ids    kernel.IDGenerator
}

func NewAddPaymentCommandHandler(
	ledger ports.Ledger,
	locker ports.OrderLocker,
	clock kernel.Clock,
	ids kernel.IDGenerator,
) AddPaymentCommandHandler {
	return AddPaymentCommandHandler{
		ledger: ledger,
		locker: locker,
		clock:  clock,
		ids:    ids,
	}
}

// Handle returns the recorded payment. A rejected payment leaves no trace:
// neither a payment record nor a change to totalPaid.
//
// Once the payment is validated the writes run detached from ctx cancellation,
// so a client disconnect cannot split the payment record from the totalPaid
// increment. The order is persisted first; if the payment record then fails to
// append, the previous order snapshot is restored.
func (h *AddPaymentCommandHandler) Handle(ctx context.Context, cmd AddPaymentCommand) (order.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return order.Payment{}, err
	}

	var recorded order.Payment
	err := withOrderLock(h.locker, cmd.OrderID(), func() error {
		o, err := getExistingOrder(ctx, h.ledger, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.ValidatePayment(cmd.Amount()); err != nil {
			return err
		}

		now := h.clock.Now()
		payment, err := order.NewPayment(h.ids.NewID(), o.ID(), cmd.Amount(), cmd.Method(), now)
		if err != nil {
			return err
		}

		previous := o.Clone()
		if err = o.ApplyPayment(payment.Amount(), now); err != nil {
			return err
		}

		writeCtx := context.WithoutCancel(ctx)
		if err = h.ledger.Put(writeCtx, o); err != nil {
			return err
		}

		if err = h.ledger.AppendPayment(writeCtx, payment); err != nil {
			if restoreErr := h.ledger.Put(writeCtx, previous); restoreErr != nil {
				return errors.Join(err, fmt.Errorf("restore order %s: %w", o.ID(), restoreErr))
			}
			return err
		}

		recorded = payment
		return nil
	})
	if err != nil {
		return order.Payment{}, err
	}

	return recorded, nil
}
