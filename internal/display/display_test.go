package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"small amount", 5.5, "$5.50"},
		{"thousands separator", 1234.5, "$1,234.50"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"exact thousand", 1000, "$1,000.00"},
		{"zero", 0, "$0.00"},
		{"negative", -1234.5, "-$1,234.50"},
		{"nan does not panic", math.NaN(), "$NaN"},
		{"infinity does not panic", math.Inf(1), "$+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5.25%", Percent(0.0525))
	assert.Equal(t, "100.00%", Percent(1.0))
	assert.Equal(t, "0.00%", Percent(0))
}

func TestYears(t *testing.T) {
	assert.Equal(t, "2.75 years", Years(2.75))
	assert.Equal(t, "30.00 years", Years(30))
}

func TestTable(t *testing.T) {
	out := Table([]string{"Month", "Balance"}, [][]string{
		{"1", "$99,876.51"},
		{"2", "$99,752.50"},
	})
	assert.Contains(t, out, "Month")
	assert.Contains(t, out, "$99,876.51")
}

func TestKeyValue(t *testing.T) {
	out := KeyValue("Monthly Payment", "$536.82")
	assert.Contains(t, out, "Monthly Payment")
	assert.Contains(t, out, "$536.82")
}
