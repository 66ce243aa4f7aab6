package order

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single order line: a product, how many units, and the unit price.
type Item struct {
	productID string
	quantity  int
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem validates and builds an order line. All violations are reported together.
//
//	item, err := order.NewItem("p1", 2, decimal.NewFromInt(3))
//	item.Subtotal() // 6
func NewItem(productID string, quantity int, price decimal.Decimal) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() string {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns quantity × price.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("item.productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item.quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"item.price is invalid",
			fmt.Errorf("%s is negative", price),
		)
	}
	i.price = price
	return nil
}
