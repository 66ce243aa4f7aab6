package ports

// OrderLocker serializes read-modify-write sequences on a single order.
// Operations on different orders never block each other.
type OrderLocker interface {
	// Lock blocks until the caller holds the lock for orderID.
	Lock(orderID string)

	// Unlock releases the lock for orderID. It fails if the lock is not held.
	Unlock(orderID string) error
}
