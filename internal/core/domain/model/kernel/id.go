package kernel

import "github.com/google/uuid"

// IDGenerator produces collision-free opaque identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random (version 4) UUIDs in their canonical string form.
//
//	gen := kernel.NewUUIDGenerator()
//	id := gen.NewID() // e.g. "550e8400-e29b-41d4-a716-446655440000"
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string {
	return f()
}
