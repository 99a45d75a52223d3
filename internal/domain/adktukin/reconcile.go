package adktukin

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed column positions in the treasury template. The template has no
// reliable headers, so the layout is positional.
const (
	colBulan      = 1
	colNIP        = 3
	colTunkin     = 7
	colPotongan   = 8
	colDiterima   = 9
	colBulanBayar = 14
	colBulanGaji  = 16

	minTemplateWidth = 17
)

// Reconcile merges confirmed allowance amounts into a copy of the
// treasury template. Rows are matched to confirmations by the NIP in
// column D; matched rows get the period month and the rounded tunkin,
// deduction and net amounts written back as text, unmatched rows pass
// through untouched. A matched row shorter than the template width is a
// format error.
func Reconcile(template [][]string, confirmations []PostConfirmationRow, month int) ([][]string, int, error) {
	if len(template) < 2 {
		return nil, 0, ErrEmptyTemplate
	}

	byNIP := make(map[string]PostConfirmationRow, len(confirmations))
	for _, c := range confirmations {
		byNIP[c.NIP] = c
	}

	bulan := fmt.Sprintf("%02d", month)
	out := make([][]string, 0, len(template))
	out = append(out, append([]string(nil), template[0]...))

	matched := 0
	for i, row := range template[1:] {
		updated := append([]string(nil), row...)
		if len(updated) <= colNIP {
			return nil, 0, fmt.Errorf("template row %d: %w", i+2, ErrRowTooShort)
		}

		c, ok := byNIP[strings.TrimSpace(updated[colNIP])]
		if ok {
			if len(updated) < minTemplateWidth {
				return nil, 0, fmt.Errorf("template row %d: %w", i+2, ErrRowTooShort)
			}
			tunkin := ParseCurrency(c.Tunkin).Round(0)
			potongan := ParseCurrency(c.TotalPotongan).Round(0)
			diterima := tunkin.Sub(potongan)

			updated[colBulan] = bulan
			updated[colTunkin] = tunkin.String()
			updated[colPotongan] = potongan.String()
			updated[colDiterima] = diterima.String()
			updated[colBulanBayar] = bulan
			updated[colBulanGaji] = bulan
			matched++
		}
		out = append(out, updated)
	}
	return out, matched, nil
}

// NetAmount is the rounded take-home tunkin for one confirmation.
func NetAmount(c PostConfirmationRow) decimal.Decimal {
	return ParseCurrency(c.Tunkin).Round(0).Sub(ParseCurrency(c.TotalPotongan).Round(0))
}
