package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
)

// moneyScale is the number of decimal places all money amounts are kept at.
const moneyScale = 2

// ErrMoneyIsNotConstructed indicates that a Money was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a value object representing a price or a cost at a fixed precision
// of two decimal places. Prices are snapshotted onto order lines at order
// creation time, so Money values never change once attached to an item.
type Money struct {
	amount decimal.Decimal
	guard  ConstructorGuard
}

// NewMoney creates a Money amount from a decimal value, rounded half away
// from zero to two decimal places. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount.Round(moneyScale),
		guard:  NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money amount from its decimal string representation.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  NewConstructorGuard(),
	}
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts, rounded to two places.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount).Round(moneyScale),
		guard:  NewConstructorGuard(),
	}
}

// MulQuantity returns price times quantity, rounded half away from zero to
// two places. This is the line-cost computation: round(price * quantity, 2).
func (m Money) MulQuantity(q Quantity) Money {
	return Money{
		amount: m.amount.Mul(q.Decimal()).Round(moneyScale),
		guard:  NewConstructorGuard(),
	}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
