// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command follows the same pattern: validate the command, take the order's
// lock, read fresh state from the ledger, apply the domain rule, persist.
package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// withOrderLock runs fn while holding the lock for orderID.
func withOrderLock(locker ports.OrderLocker, orderID string, fn func() error) (err error) {
	locker.Lock(orderID)
	defer func() {
		if unlockErr := locker.Unlock(orderID); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}()

	return fn()
}

// getExistingOrder reads an order and turns absence into a not-found error.
func getExistingOrder(ctx context.Context, ledger ports.Ledger, orderID string) (*order.Order, error) {
	o, ok, err := ledger.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	return o, nil
}
