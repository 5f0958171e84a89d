package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every amount is rounded to.
const MoneyScale int32 = 2

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney")

// Money is a USD amount with cent precision. The sign is not restricted:
// refunds and corrections are expressed as negative amounts.
//
// Example:
//
//	income := kernel.NewMoney(decimal.RequireFromString("25.50"))
//	total := kernel.ZeroMoney().Add(income)
//	fmt.Println(total) // 25.50
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney rounds amount half away from zero to MoneyScale decimal places.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		amount: amount.Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// ZeroMoney is the neutral element of Add.
func ZeroMoney() Money {
	return NewMoney(decimal.Zero)
}

// Validate ensures the value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the rounded decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// IsEqual compares amounts numerically, so 10.5 equals 10.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// CheckIntegerDigits fails when the absolute amount needs more than maxDigits
// digits before the decimal point, which is what a numeric(maxDigits+2, 2)
// column can store.
func (m Money) CheckIntegerDigits(paramName string, maxDigits int32) error {
	limit := decimal.New(1, maxDigits)
	if m.amount.Abs().LessThan(limit) {
		return nil
	}

	maxValue := limit.Sub(decimal.New(1, -MoneyScale))
	return errs.NewValueIsOutOfRangeErrorWithCause(
		paramName,
		m.String(),
		maxValue.Neg().StringFixed(MoneyScale),
		maxValue.StringFixed(MoneyScale),
		fmt.Errorf("at most %d integer digits are allowed", maxDigits),
	)
}
