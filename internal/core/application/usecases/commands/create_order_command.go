package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is the raw input for a single order item.
type OrderLine struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]OrderLine{
//	    {ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(3)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	created.Total() // 6
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every line and reports all violations at once.
func NewCreateOrderCommand(lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns a copy of the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("an order needs at least one item"))
	}

	items := make([]order.Item, 0, len(lines))
	lineErrs := make([]error, 0)
	for idx, line := range lines {
		item, err := order.NewItem(line.ProductID, line.Quantity, line.Price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("items[%d]: %w", idx, err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}
