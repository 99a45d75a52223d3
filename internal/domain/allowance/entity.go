package allowance

import "github.com/shopspring/decimal"

// CalculationResult is one employee's meal-allowance line for a period.
type CalculationResult struct {
	Nama        string          `json:"nama"`
	NIP         string          `json:"nip"`
	Golongan    string          `json:"golongan"`
	WFODays     int             `json:"wfo_days"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	NetAmount   decimal.Decimal `json:"net_amount"`
}

// Summary aggregates a result set for the report footer.
type Summary struct {
	TotalEmployees  int             `json:"total_employees"`
	GrandTotalGross decimal.Decimal `json:"grand_total_gross"`
	GrandTotalTax   decimal.Decimal `json:"grand_total_tax"`
	GrandTotalNet   decimal.Decimal `json:"grand_total_net"`
}

// Summarize totals the gross, tax and net columns over results.
func Summarize(results []CalculationResult) Summary {
	s := Summary{TotalEmployees: len(results)}
	for _, r := range results {
		s.GrandTotalGross = s.GrandTotalGross.Add(r.GrossAmount)
		s.GrandTotalTax = s.GrandTotalTax.Add(r.TaxAmount)
		s.GrandTotalNet = s.GrandTotalNet.Add(r.NetAmount)
	}
	return s
}
