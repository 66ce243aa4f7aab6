// Package kernel holds the collaborators every part of the order engine shares
// but that are owned by the environment: the clock that stamps creation and
// update times, and the generator of opaque identifiers for orders and payments.
//
// Both are injected. Production wiring uses SystemClock and UUIDGenerator;
// tests substitute fixed or sequential implementations so timestamps and ids
// are deterministic.
package kernel
