// Package extract builds the tab-delimited WFO extract consumed by the
// payment system and classifies employees by appointment cohort.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/absensi-adk/backend-go/internal/domain/eligibility"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

var ErrUnknownEmployeeType = errors.New("unknown employee type")

// EmployeeType is the appointment cohort an employee number encodes.
type EmployeeType string

const (
	TypeCPNS EmployeeType = "CPNS"
	TypePPPK EmployeeType = "PPPK"
	TypePNS  EmployeeType = "PNS"
)

// ParseEmployeeType validates a cohort name from user input.
func ParseEmployeeType(s string) (EmployeeType, error) {
	switch EmployeeType(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeCPNS:
		return TypeCPNS, nil
	case TypePPPK:
		return TypePPPK, nil
	case TypePNS:
		return TypePNS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEmployeeType, s)
}

// Classify derives the cohort from the NIP: the 2025 intake are CPNS, the
// 2024 intake PPPK, everyone else PNS. A NIP carrying both markers is
// CPNS, since the later intake wins.
func Classify(nip string) EmployeeType {
	switch {
	case strings.Contains(nip, "2025"):
		return TypeCPNS
	case strings.Contains(nip, "2024"):
		return TypePPPK
	default:
		return TypePNS
	}
}

// Matches reports whether nip belongs to the cohort.
func Matches(nip string, t EmployeeType) bool {
	return Classify(nip) == t
}

// Generate walks the roster's day-of-month columns and emits one
// "<nip>\t<YYYY-MM-DD>" line per WFO day, in roster order, for employees
// of the requested cohort that are not excluded from the payment
// extract. The output has no trailing newline.
func Generate(roster sheet.Sheet, t EmployeeType, year, month int) (string, int) {
	nipIdx := roster.ColumnIndex("NIP")
	dateCols := roster.DateColumns()
	headers := roster.Headers()

	var lines []string
	for _, row := range roster.DataRows() {
		nip := sheet.CleanNIP(sheet.Cell(row, nipIdx))
		if nip == "" || eligibility.Extracts.Excluded(nip) || !Matches(nip, t) {
			continue
		}
		for _, col := range dateCols {
			if sheet.IsWFO(sheet.Cell(row, col)) {
				day := strings.TrimSpace(headers[col])
				lines = append(lines, fmt.Sprintf("%s\t%d-%02d-%s", nip, year, month, pad(day)))
			}
		}
	}
	return strings.Join(lines, "\n"), len(lines)
}

func pad(day string) string {
	if len(day) == 1 {
		return "0" + day
	}
	return day
}
