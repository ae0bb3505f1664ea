package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromMajorUnits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "whole amount", input: "25", want: 25000},
		{name: "three decimals", input: "12.345", want: 12345},
		{name: "rounds half up", input: "0.0005", want: 1},
		{name: "rounds down", input: "0.0004", want: 0},
		{name: "negative rounds away from zero", input: "-1.0005", want: -1001},
		{name: "zero", input: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MoneyFromMajorUnits(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, m.MinorUnits())
			assert.Equal(t, DefaultCurrency, m.Currency())
		})
	}
}

func TestMoney_MinorUnitsRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 999, 1000, 25000, 123456789, math.MaxInt64, math.MinInt64} {
		m := MoneyFromMinorUnits(n)
		back := m.MajorUnits().Mul(decimal.NewFromInt(MinorUnitsPerMajor))

		if !back.Equal(decimal.NewFromInt(n)) {
			t.Fatalf("round trip of %d gave %s", n, back)
		}
	}
}

func TestMoney_AddSub(t *testing.T) {
	a := MoneyFromMinorUnits(1500)
	b := MoneyFromMinorUnits(250)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(1750), sum.MinorUnits())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), diff.MinorUnits())

	// operands are unchanged
	assert.Equal(t, int64(1500), a.MinorUnits())
	assert.Equal(t, int64(250), b.MinorUnits())
}

func TestMoney_NoFloatingPointDrift(t *testing.T) {
	tenth := MoneyFromMajorUnits(decimal.RequireFromString("0.1"))
	total := MoneyFromMinorUnits(0)

	for i := 0; i < 10; i++ {
		var err error
		total, err = total.Add(tenth)
		require.NoError(t, err)
	}

	assert.True(t, total.Equal(MoneyFromMinorUnits(1000)))
}

func TestMoney_Overflow(t *testing.T) {
	_, err := MoneyFromMinorUnits(math.MaxInt64).Add(MoneyFromMinorUnits(1))
	assert.ErrorIs(t, err, ErrMoneyOverflow)

	_, err = MoneyFromMinorUnits(math.MinInt64).Sub(MoneyFromMinorUnits(1))
	assert.ErrorIs(t, err, ErrMoneyOverflow)

	_, err = MoneyFromMinorUnits(math.MinInt64).Add(MoneyFromMinorUnits(-1))
	assert.ErrorIs(t, err, ErrMoneyOverflow)
}

func TestMoney_Equal(t *testing.T) {
	assert.True(t, MoneyFromMinorUnits(100).Equal(MoneyFromMinorUnits(100)))
	assert.False(t, MoneyFromMinorUnits(100).Equal(MoneyFromMinorUnits(101)))
	assert.True(t, Money{}.Equal(MoneyFromMinorUnits(0)))
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("250.125")
	require.NoError(t, err)
	assert.Equal(t, int64(250125), m.MinorUnits())

	_, err = ParseMoney("abc")
	assert.True(t, errors.Is(err, ErrInvalidAmount))

	_, err = ParseMoney("99999999999999999999")
	assert.True(t, errors.Is(err, ErrMoneyOverflow))
}

func TestMoney_StringAndJSON(t *testing.T) {
	m := MoneyFromMinorUnits(25000)
	assert.Equal(t, "25.000 DZD", m.String())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `"25.000"`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal([]byte(`"12.5"`), &decoded))
	assert.Equal(t, int64(12500), decoded.MinorUnits())

	require.NoError(t, json.Unmarshal([]byte(`7`), &decoded))
	assert.Equal(t, int64(7000), decoded.MinorUnits())

	assert.ErrorIs(t, json.Unmarshal([]byte(`"x"`), &decoded), ErrInvalidAmount)
}

func TestMoney_UnmarshalJSONRange(t *testing.T) {
	var decoded Money
	require.NoError(t, json.Unmarshal([]byte(`"9223372036854775.807"`), &decoded))
	assert.Equal(t, int64(math.MaxInt64), decoded.MinorUnits())

	require.NoError(t, json.Unmarshal([]byte(`"-9223372036854775.808"`), &decoded))
	assert.Equal(t, int64(math.MinInt64), decoded.MinorUnits())

	for _, raw := range []string{`"10000000000000000000"`, `10000000000000000000`, `"9223372036854775.808"`, `"-9223372036854775.809"`} {
		decoded = MoneyFromMinorUnits(42)
		err := json.Unmarshal([]byte(raw), &decoded)
		assert.ErrorIs(t, err, ErrMoneyOverflow, raw)
		assert.Equal(t, int64(42), decoded.MinorUnits(), "failed decode must leave %s untouched", raw)
	}

	_, err := ParseMoney("10000000000000000000")
	assert.ErrorIs(t, err, ErrMoneyOverflow)
}
