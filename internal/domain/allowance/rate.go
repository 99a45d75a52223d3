package allowance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is the daily meal-allowance tariff and income-tax rate for a
// golongan group.
type Rate struct {
	Daily decimal.Decimal
	Tax   decimal.Decimal
}

// rateTable maps the Roman-numeral golongan group to its tariff. Groups I
// and II are below the income-tax threshold.
var rateTable = map[string]Rate{
	"I":   {Daily: decimal.NewFromInt(35000), Tax: decimal.Zero},
	"II":  {Daily: decimal.NewFromInt(36000), Tax: decimal.Zero},
	"III": {Daily: decimal.NewFromInt(37000), Tax: decimal.NewFromFloat(0.05)},
	"IV":  {Daily: decimal.NewFromInt(38000), Tax: decimal.NewFromFloat(0.05)},
}

// RateFor resolves the tariff for a golongan string such as "III/a" by its
// slash-terminated Roman-numeral prefix. The match is case-sensitive, so
// malformed or out-of-domain groups ("IX/a", "i/a") get a zero rate and the
// employee still appears in the report with zero amounts.
func RateFor(golongan string) Rate {
	g := strings.TrimSpace(golongan)
	for _, group := range []string{"III", "IV", "II", "I"} {
		if strings.HasPrefix(g, group+"/") {
			return rateTable[group]
		}
	}
	return Rate{Daily: decimal.Zero, Tax: decimal.Zero}
}
