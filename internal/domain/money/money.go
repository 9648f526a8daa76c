package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter ISO code")
)

// minorUnitExponent is the number of decimal places between the provider's
// smallest currency unit and the display unit (paise to rupees, cents to dollars).
const minorUnitExponent = 2

// Money is an amount in the smallest currency unit.
type Money struct {
	minor    int64
	currency string
}

func New(minor int64, currency string) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if len(cur) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{minor: minor, currency: cur}, nil
}

func MustNew(minor int64, currency string) Money {
	m, err := New(minor, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Minor() int64       { return m.minor }
func (m Money) Currency() string   { return m.currency }
func (m Money) IsZero() bool       { return m.minor == 0 }
func (m Money) Equal(o Money) bool { return m.minor == o.minor && m.currency == o.currency }

// Display converts the minor amount into the display unit, e.g. 500 -> 5.00.
func (m Money) Display() decimal.Decimal {
	return decimal.New(m.minor, -minorUnitExponent)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Display().StringFixed(minorUnitExponent), m.currency)
}

// FromDisplay converts a display amount back into minor units, rounding half away from zero.
func FromDisplay(amount decimal.Decimal, currency string) (Money, error) {
	minor := amount.Shift(minorUnitExponent).Round(0).IntPart()
	return New(minor, currency)
}
