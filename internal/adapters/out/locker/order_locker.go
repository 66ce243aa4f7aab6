// Package locker provides per-order mutual exclusion backed by github.com/moby/locker.
package locker

import (
	"github.com/moby/locker"
)

// OrderLocker hands out one lock per order id. Locks are created on demand and
// released from memory once no goroutine holds or waits for them.
type OrderLocker struct {
	locks *locker.Locker
}

func NewOrderLocker() *OrderLocker {
	return &OrderLocker{locks: locker.New()}
}

func (l *OrderLocker) Lock(orderID string) {
	l.locks.Lock(orderID)
}

func (l *OrderLocker) Unlock(orderID string) error {
	return l.locks.Unlock(orderID)
}
