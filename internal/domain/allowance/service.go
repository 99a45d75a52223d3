package allowance

import (
	"context"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

// Service calculates the monthly meal allowance from a WFO roster.
type Service interface {
	// Calculate counts WFO days per roster row, joins the grade reference
	// by employee name and prices each eligible employee.
	Calculate(ctx context.Context, roster sheet.Sheet) (*CalculateResponse, error)

	// Report renders calculation results to a spreadsheet with a summary
	// block, sorted by name.
	Report(ctx context.Context, results []CalculationResult) ([]byte, error)

	// GenerateExtract builds the tab-delimited payment-system extract for
	// one cohort and period from the roster and archives it together with
	// the cohort's calculation snapshot. A period that was already
	// archived for the cohort is rejected unless replace is set.
	GenerateExtract(ctx context.Context, roster sheet.Sheet, results []CalculationResult, req ExtractRequest, replace bool) (*ExtractResponse, error)
}
