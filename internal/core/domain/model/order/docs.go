// Package order provides the Order aggregate, its line items, payment records
// and the status state machine.
//
// The package includes:
//   - Order: the aggregate root holding items, the fixed total, the paid amount and status
//   - Item: a validated order line (product, quantity, unit price)
//   - Payment: an immutable record of funds applied toward an order
//   - Status: the closed enumeration PENDING, PROCESSING, SHIPPED, DELIVERED, CANCELLED
//
// Key business rules:
//   - An order needs at least one item; quantity > 0 and price >= 0 for every item
//   - The total is fixed at creation
//   - Payments are accepted only while Pending and never beyond the outstanding balance
//   - Only an unpaid Pending order can be cancelled
//   - A fully paid Pending order can be promoted to Processing
//   - ChangeStatus is an unrestricted administrative override
//
// Money is represented with github.com/shopspring/decimal so balance comparisons are exact.
package order
