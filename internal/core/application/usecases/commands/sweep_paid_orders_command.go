package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var (
	ErrSweepPaidOrdersCommandIsNotConstructed = errors.New(
		"SweepPaidOrdersCommand must be created via NewSweepPaidOrdersCommand constructor",
	)
)

// SweepPaidOrdersCommand triggers promotion of every fully paid PENDING order to PROCESSING.
// This is a parameterless batch command, normally issued by the reconciliation job.
//
// Example:
//
//	cmd := NewSweepPaidOrdersCommand()
//	promoted, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("sweep failed: %v", err)
//	}
type SweepPaidOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepPaidOrdersCommand() SweepPaidOrdersCommand {
	return SweepPaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepPaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepPaidOrdersCommandIsNotConstructed)
}
