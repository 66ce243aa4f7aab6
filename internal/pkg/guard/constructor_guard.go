// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects whose
// zero value is not meaningful. Only NewConstructorGuard produces a guard that
// passes Validate, so a struct literal built outside its package is rejected
// before it reaches a handler.
//
//	type AddPaymentCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AddPaymentCommand) Validate() error {
//	    return c.guard.Validate(ErrAddPaymentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// for a zero-value guard and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
