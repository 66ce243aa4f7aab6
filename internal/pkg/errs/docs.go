// Package errs provides the typed errors shared by the order engine and its adapters.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrObjectNotFound) returned by Unwrap
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//
// The sentinels fall into the three kinds callers react to:
//   - validation: ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange (see IsValidation)
//   - not found: ErrObjectNotFound (see IsNotFound)
//   - conflict: ErrObjectConflict (see IsConflict)
//
// Classification goes through errors.Is, so the kinds survive fmt.Errorf("%w")
// wrapping and errors.Join.
package errs
