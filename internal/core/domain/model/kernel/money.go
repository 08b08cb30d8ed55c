package kernel

import (
	"fmt"

	"loadboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits money is kept at (paise/cents).
const moneyScale = 2

// maxMoney is the largest amount a price column (numeric(14,2)) can hold.
var maxMoney = decimal.RequireFromString("999999999999.99")

// Money is a non-negative amount in the board's single settlement currency.
// It is backed by a decimal so sums over many loads stay exact.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of zero, the identity for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount lies in [0, 999999999999.99] and has at most
// two fractional digits. Sums built with Add are not capped.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() || amount.GreaterThan(maxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount.String(), 0, maxMoney.String())
	}
	if !amount.Equal(amount.Round(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s has more than %d fractional digits", amount, moneyScale),
		)
	}

	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "10000" or "2499.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// MustMoney is MoneyFromString for fixtures; it panics on invalid input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
