package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		hasLogo bool
		logo    string
		total   string
	}{
		{name: "without logo", hasLogo: false, logo: "0", total: "149"},
		{name: "with logo", hasLogo: true, logo: "49", total: "198"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(tt.hasLogo)
			assert.True(t, q.BasePrice.Equal(decimal.NewFromInt(149)))
			assert.True(t, q.LogoPrice.Equal(decimal.RequireFromString(tt.logo)))
			assert.True(t, q.TotalPrice.Equal(decimal.RequireFromString(tt.total)))
			assert.True(t, q.TotalPrice.Equal(q.BasePrice.Add(q.LogoPrice)))
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	assert.Equal(t, Calculate(true), Calculate(true))
	assert.Equal(t, Calculate(false), Calculate(false))
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().Equal(decimal.Zero))
	assert.True(t, Sum(Calculate(false), Calculate(true)).Equal(decimal.NewFromInt(347)))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(19800), MinorUnits(decimal.NewFromInt(198)))
	assert.Equal(t, int64(14900), MinorUnits(decimal.NewFromInt(149)))
	assert.Equal(t, int64(1001), MinorUnits(decimal.RequireFromString("10.005")))
}
