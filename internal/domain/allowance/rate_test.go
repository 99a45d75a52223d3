package allowance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateFor(t *testing.T) {
	tests := []struct {
		golongan  string
		wantDaily int64
		wantTax   string
	}{
		{"I/a", 35000, "0"},
		{"II/c", 36000, "0"},
		{"III/a", 37000, "0.05"},
		{"III/d", 37000, "0.05"},
		{"IV/b", 38000, "0.05"},
		{" IV/e ", 38000, "0.05"},
		{"V/a", 0, "0"},
		{"IX/a", 0, "0"},
		{"i/a", 0, "0"},
		{"III", 0, "0"},
		{"", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.golongan, func(t *testing.T) {
			r := RateFor(tt.golongan)
			assert.True(t, r.Daily.Equal(decimal.NewFromInt(tt.wantDaily)),
				"daily = %s", r.Daily)
			assert.True(t, r.Tax.Equal(decimal.RequireFromString(tt.wantTax)),
				"tax = %s", r.Tax)
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []CalculationResult{
		{GrossAmount: decimal.NewFromInt(74000), TaxAmount: decimal.NewFromInt(3700), NetAmount: decimal.NewFromInt(70300)},
		{GrossAmount: decimal.NewFromInt(36000), TaxAmount: decimal.Zero, NetAmount: decimal.NewFromInt(36000)},
	}
	s := Summarize(results)
	assert.Equal(t, 2, s.TotalEmployees)
	assert.True(t, s.GrandTotalGross.Equal(decimal.NewFromInt(110000)))
	assert.True(t, s.GrandTotalTax.Equal(decimal.NewFromInt(3700)))
	assert.True(t, s.GrandTotalNet.Equal(decimal.NewFromInt(106300)))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalEmployees)
	assert.True(t, s.GrandTotalGross.IsZero())
}
