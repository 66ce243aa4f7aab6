// Package services provides domain services that apply business rules across
// more than one order. It implements workflows that don't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - OrderSettler: decides which orders are settled and moves them into processing
//
// Domain services are stateless; command handlers create them on demand and
// remain responsible for locking and persistence.
package services
