package attendance

import "github.com/shopspring/decimal"

// cutWeights is the percentage deducted per occurrence of each category.
// TL, CUTI and HADIR carry no deduction.
var cutWeights = map[string]decimal.Decimal{
	CategoryAbsent: decimal.NewFromInt(5),
	CategoryT1:     decimal.NewFromFloat(0.5),
	CategoryT2:     decimal.NewFromInt(1),
	CategoryT3:     decimal.NewFromFloat(1.5),
	CategoryT4:     decimal.NewFromFloat(2.5),
	CategoryP1:     decimal.NewFromFloat(0.5),
	CategoryP2:     decimal.NewFromInt(1),
	CategoryP3:     decimal.NewFromFloat(1.5),
	CategoryP4:     decimal.NewFromFloat(2.5),
}

// CutPercentage sums the deduction weight over a record's counters.
// The sum is not capped, so heavy absence can exceed 100%.
func CutPercentage(counts map[string]int) decimal.Decimal {
	total := decimal.Zero
	for category, weight := range cutWeights {
		if n := counts[category]; n > 0 {
			total = total.Add(weight.Mul(decimal.NewFromInt(int64(n))))
		}
	}
	return total
}

// Deduction is the performance-allowance cut applied to one employee.
type Deduction struct {
	CutPercentage decimal.Decimal
	Before        decimal.Decimal
	NominalCut    decimal.Decimal
	After         decimal.Decimal
}

// ApplyDeduction computes after = before × (1 − cut/100) from a record's
// counters. The result can go negative when the cut exceeds 100%.
func ApplyDeduction(before decimal.Decimal, counts map[string]int) Deduction {
	cut := CutPercentage(counts)
	after := before.Mul(decimal.NewFromInt(1).Sub(cut.Div(decimal.NewFromInt(100))))
	return Deduction{
		CutPercentage: cut,
		Before:        before,
		NominalCut:    before.Sub(after),
		After:         after,
	}
}
