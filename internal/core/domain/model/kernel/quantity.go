package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
)

// quantityScale is the number of decimal places all quantities are kept at.
// Weight-type products are ordered in fractional amounts (e.g. 1.82 kg),
// so two places is the precision the whole reconciliation arithmetic runs on.
const quantityScale = 2

// ErrQuantityIsNotConstructed indicates that a Quantity was not created through
// one of the constructor functions.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity, QuantityFromString, or ZeroQuantity")

// Quantity is a value object representing an amount of product at a fixed
// precision of two decimal places. It is used both for ordered quantities
// and for the amounts physically placed into containers.
//
// All arithmetic rounds half away from zero to two places, so repeated
// recomputation of the same sums is stable. The zero value is invalid;
// use ZeroQuantity for an explicit zero.
//
// Example:
//
//	ordered, _ := kernel.NewQuantity(decimal.RequireFromString("1.82"))
//	placed, _ := kernel.NewQuantity(decimal.RequireFromString("1.00"))
//	missing := ordered.Sub(placed) // 0.82
type Quantity struct {
	value decimal.Decimal
	guard ConstructorGuard
}

// NewQuantity creates a Quantity from a decimal value.
// The value is rounded half away from zero to two decimal places.
// Negative values are rejected: quantities describe physical amounts of product.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is negative", value.String()),
		)
	}

	return Quantity{
		value: value.Round(quantityScale),
		guard: NewConstructorGuard(),
	}, nil
}

// QuantityFromString parses a Quantity from its decimal string representation.
// This is the usual entry point for values coming from HTTP requests or the database.
func QuantityFromString(s string) (Quantity, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	return NewQuantity(value)
}

// ZeroQuantity returns a valid zero quantity.
func ZeroQuantity() Quantity {
	return Quantity{
		value: decimal.Zero,
		guard: NewConstructorGuard(),
	}
}

// Validate checks that the Quantity was created through a constructor.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Decimal returns the underlying decimal value.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// Add returns the sum of two quantities, rounded to two places.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{
		value: q.value.Add(other.value).Round(quantityScale),
		guard: NewConstructorGuard(),
	}
}

// Sub returns the difference of two quantities, rounded to two places.
// The result may be negative; callers that treat negative differences as
// invalid must check IsNegative themselves.
func (q Quantity) Sub(other Quantity) Quantity {
	return Quantity{
		value: q.value.Sub(other.value).Round(quantityScale),
		guard: NewConstructorGuard(),
	}
}

// IsEqual reports whether two quantities represent the same amount.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// GreaterThan reports whether q is strictly greater than other.
func (q Quantity) GreaterThan(other Quantity) bool {
	return q.value.GreaterThan(other.value)
}

// LessThan reports whether q is strictly less than other.
func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// IsNegative reports whether the quantity is below zero.
// Constructed quantities are never negative; this only matters for
// differences produced by Sub.
func (q Quantity) IsNegative() bool {
	return q.value.IsNegative()
}

// String returns the quantity formatted with two decimal places.
func (q Quantity) String() string {
	return q.value.StringFixed(quantityScale)
}
