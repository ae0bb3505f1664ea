package domain

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// MinorUnitsPerMajor is the fixed scale between the major currency unit and
	// its minor units (1 DZD = 1000 millimes).
	MinorUnitsPerMajor = 1000

	// MinorUnitExponent is the number of decimal places a major-unit amount carries.
	MinorUnitExponent = 3

	// DefaultCurrency is the single currency the ledger books in.
	DefaultCurrency = "DZD"
)

var (
	minorScale    = decimal.NewFromInt(MinorUnitsPerMajor)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// Money is an exact fixed-point amount held in integer minor units.
// The zero value is zero DZD.
type Money struct {
	minor    int64
	currency string
}

// MoneyFromMinorUnits builds Money directly from minor units.
func MoneyFromMinorUnits(minor int64) Money {
	return Money{minor: minor, currency: DefaultCurrency}
}

// MoneyFromMajorUnits converts a major-unit decimal, rounding half away from
// zero to the nearest minor unit.
func MoneyFromMajorUnits(amount decimal.Decimal) Money {
	return Money{
		minor:    amount.Mul(minorScale).Round(0).IntPart(),
		currency: DefaultCurrency,
	}
}

// ParseMoney parses a major-unit decimal string such as "250.125".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	m, ok := checkedFromMajorUnits(d)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrMoneyOverflow, s)
	}

	return m, nil
}

// checkedFromMajorUnits is MoneyFromMajorUnits with a range check: ok is false
// when the rounded amount does not fit in int64 minor units.
func checkedFromMajorUnits(d decimal.Decimal) (Money, bool) {
	scaled := d.Mul(minorScale).Round(0)
	if scaled.GreaterThan(maxMinorUnits) || scaled.LessThan(minMinorUnits) {
		return Money{}, false
	}

	return Money{minor: scaled.IntPart(), currency: DefaultCurrency}, true
}

// MinorUnits returns the amount in minor units.
func (m Money) MinorUnits() int64 {
	return m.minor
}

// MajorUnits returns the amount in major units. The conversion is exact.
func (m Money) MajorUnits() decimal.Decimal {
	return decimal.New(m.minor, -MinorUnitExponent)
}

// Currency returns the ISO currency code.
func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.minor == 0 }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.minor < 0 }

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool { return m.minor > 0 }

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.minor == other.minor && m.Currency() == other.Currency()
}

// Add returns m + other. It fails when currencies differ or the sum overflows int64.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency(), other.Currency())
	}

	sum := m.minor + other.minor
	if (other.minor > 0 && sum < m.minor) || (other.minor < 0 && sum > m.minor) {
		return Money{}, ErrMoneyOverflow
	}

	return Money{minor: sum, currency: m.Currency()}, nil
}

// Sub returns m - other. It fails when currencies differ or the difference overflows int64.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency(), other.Currency())
	}

	diff := m.minor - other.minor
	if (other.minor > 0 && diff > m.minor) || (other.minor < 0 && diff < m.minor) {
		return Money{}, ErrMoneyOverflow
	}

	return Money{minor: diff, currency: m.Currency()}, nil
}

func (m Money) String() string {
	return m.MajorUnits().StringFixed(MinorUnitExponent) + " " + m.Currency()
}

// MarshalJSON encodes the amount as a major-unit decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.MajorUnits().StringFixed(MinorUnitExponent))
}

// UnmarshalJSON accepts a decimal string or a bare JSON number in major units.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, string(data))
	}

	parsed, ok := checkedFromMajorUnits(d)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMoneyOverflow, string(data))
	}

	*m = parsed
	return nil
}
