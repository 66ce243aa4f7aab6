package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Domain-enforced transitions:
//
//	Pending ──(cancel, unpaid)──────> Cancelled
//	Pending ──(sweep, fully paid)───> Processing
//
// Shipped and Delivered are reached only through the administrative status
// override, which accepts any valid status regardless of the current one.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota

	// Pending is the initial status. Only pending orders accept payments
	// or can be cancelled.
	Pending

	// Processing is set by the reconciliation sweep once the order is fully paid.
	Processing

	Shipped

	Delivered

	// Cancelled is terminal by convention.
	Cancelled
)

const (
	pendingLiteral    = "PENDING"
	processingLiteral = "PROCESSING"
	shippedLiteral    = "SHIPPED"
	deliveredLiteral  = "DELIVERED"
	cancelledLiteral  = "CANCELLED"
	unknownLiteral    = "UNKNOWN"
)

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled}
}

// ParseStatus converts the exact, case-sensitive literal into a Status.
//
//	s, err := order.ParseStatus("SHIPPED") // order.Shipped, nil
//	_, err = order.ParseStatus("shipped")  // *errs.ValueIsInvalidError
func ParseStatus(s string) (Status, error) {
	switch s {
	case pendingLiteral:
		return Pending, nil
	case processingLiteral:
		return Processing, nil
	case shippedLiteral:
		return Shipped, nil
	case deliveredLiteral:
		return Delivered, nil
	case cancelledLiteral:
		return Cancelled, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not one of PENDING, PROCESSING, SHIPPED, DELIVERED, CANCELLED", s),
		)
	}
}

// String returns the wire literal, or "UNKNOWN" for values outside the enumeration.
func (s Status) String() string {
	switch s {
	case Pending:
		return pendingLiteral
	case Processing:
		return processingLiteral
	case Shipped:
		return shippedLiteral
	case Delivered:
		return deliveredLiteral
	case Cancelled:
		return cancelledLiteral
	case Unknown:
		return unknownLiteral
	default:
		return unknownLiteral
	}
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	switch s {
	case Pending, Processing, Shipped, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseStatus semantics.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ValidateAcceptsPayment checks that payments may be recorded in this status,
// without performing any transition.
//
// Statuses accepting payments:
//   - Pending (the order has not been handed to processing yet)
//
// Statuses rejecting payments:
//   - Processing, Shipped, Delivered, Cancelled
//   - Unknown (invalid status)
//
// Returns:
//   - nil if a payment may be applied
//   - *errs.ObjectConflictError naming the current status otherwise
//
// Example:
//
//	if err := o.Status().ValidateAcceptsPayment(); err != nil {
//	    return err // 409 at the HTTP edge
//	}
func (s Status) ValidateAcceptsPayment() error {
	if s != Pending {
		return errs.NewObjectConflictError(
			"order",
			fmt.Sprintf("accepts payments only while %s, current status is %s", Pending, s),
		)
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Invalid transitions:
//   - Processing, Shipped, Delivered -> Cancelled (the order is past payment)
//   - Cancelled -> Cancelled (already cancelled)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (Unknown, *errs.ObjectConflictError) otherwise
//
// Only the status rule lives here. Order.Cancel adds the check that nothing
// has been paid yet.
//
// Example:
//
//	newStatus, err := Pending.Cancel() // Cancelled, nil
//	_, err = Shipped.Cancel()          // conflict
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewObjectConflictError(
			"order",
			fmt.Sprintf("can be cancelled only while %s, current status is %s", Pending, s),
		)
	}
	return Cancelled, nil
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (reconciliation sweep)
//
// Invalid transitions:
//   - any other status -> Processing
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (Unknown, *errs.ObjectConflictError) otherwise
//
// Order.StartProcessing additionally requires the order to be fully paid.
//
// Example:
//
//	newStatus, err := currentStatus.StartProcessing()
//	if err != nil {
//	    // already promoted, cancelled or overridden
//	}
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewObjectConflictError(
			"order",
			fmt.Sprintf("can start processing only from %s, current status is %s", Pending, s),
		)
	}
	return Processing, nil
}
