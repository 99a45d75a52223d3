package allowance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/absensi-adk/backend-go/internal/domain/allowance"
	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/eligibility"
	"github.com/absensi-adk/backend-go/internal/domain/extract"
	"github.com/absensi-adk/backend-go/internal/domain/master/grade"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
	"github.com/absensi-adk/backend-go/internal/pkg/spreadsheet"
)

var reportHeaders = []string{
	"NAMA", "NIP", "GOLONGAN", "HARI WFO", "TARIF PER HARI", "JUMLAH KOTOR", "PAJAK", "TOTAL UANG MAKAN",
}

type allowanceServiceImpl struct {
	gradeRepo   grade.EmployeeGradeRepository
	archiveRepo archive.ExtractArchiveRepository
	logger      *slog.Logger
}

func NewAllowanceService(
	gradeRepo grade.EmployeeGradeRepository,
	archiveRepo archive.ExtractArchiveRepository,
	logger *slog.Logger,
) allowance.Service {
	return &allowanceServiceImpl{
		gradeRepo:   gradeRepo,
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

// Calculate implements allowance.Service.
func (s *allowanceServiceImpl) Calculate(ctx context.Context, roster sheet.Sheet) (*allowance.CalculateResponse, error) {
	// An absent sheet yields an empty result set, not an error. A header
	// row, when present, still has to be well formed.
	if len(roster.Rows) == 0 {
		return &allowance.CalculateResponse{Summary: allowance.Summarize(nil)}, nil
	}
	if err := sheet.ValidateRosterHeader(roster.Headers()); err != nil {
		return nil, err
	}

	grades, err := s.gradeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grade reference: %w", err)
	}

	byNama := make(map[string]grade.EmployeeGrade, len(grades))
	for _, g := range grades {
		byNama[strings.ToLower(strings.TrimSpace(g.Nama))] = g
	}

	nipIdx := roster.ColumnIndex("NIP")
	dateCols := roster.DateColumns()

	var results []allowance.CalculationResult
	var skipped []string

	for _, row := range roster.DataRows() {
		nama := sheet.Cell(row, 0)
		nip := sheet.CleanNIP(sheet.Cell(row, nipIdx))
		if nama == "" {
			continue
		}
		if eligibility.Reports.Excluded(nip) {
			continue
		}

		g, ok := byNama[strings.ToLower(nama)]
		if !ok {
			s.logger.Warn("roster name not found in grade reference", "nama", nama, "nip", nip)
			skipped = append(skipped, nama)
			continue
		}

		wfoDays := 0
		for _, col := range dateCols {
			if sheet.IsWFO(sheet.Cell(row, col)) {
				wfoDays++
			}
		}

		rate := allowance.RateFor(g.Golongan)
		gross := rate.Daily.Mul(decimal.NewFromInt(int64(wfoDays)))
		tax := gross.Mul(rate.Tax)
		net := gross.Sub(tax)

		results = append(results, allowance.CalculationResult{
			Nama:        g.Nama,
			NIP:         nip,
			Golongan:    g.Golongan,
			WFODays:     wfoDays,
			DailyRate:   rate.Daily,
			GrossAmount: gross,
			TaxAmount:   tax,
			NetAmount:   net,
		})
	}

	sortByNama(results)

	return &allowance.CalculateResponse{
		Results: results,
		Skipped: skipped,
		Summary: allowance.Summarize(results),
	}, nil
}

// Report implements allowance.Service.
func (s *allowanceServiceImpl) Report(ctx context.Context, results []allowance.CalculationResult) ([]byte, error) {
	if len(results) == 0 {
		return nil, allowance.ErrNoResults
	}

	sorted := make([]allowance.CalculationResult, len(results))
	copy(sorted, results)
	sortByNama(sorted)

	rows := make([][]any, 0, len(sorted)+6)
	rows = append(rows, spreadsheet.StringGrid([][]string{reportHeaders})[0])
	for _, r := range sorted {
		tarif := r.DailyRate
		if r.WFODays == 0 {
			tarif = decimal.Zero
		}
		rows = append(rows, []any{
			r.Nama,
			r.NIP,
			r.Golongan,
			r.WFODays,
			tarif.InexactFloat64(),
			r.GrossAmount.InexactFloat64(),
			r.TaxAmount.InexactFloat64(),
			r.NetAmount.InexactFloat64(),
		})
	}

	summary := allowance.Summarize(sorted)
	rows = append(rows,
		[]any{},
		[]any{"SUMMARY"},
		[]any{"Total Employees", summary.TotalEmployees},
		[]any{"Grand Total Gross", "", "", "", "", summary.GrandTotalGross.InexactFloat64()},
		[]any{"Grand Total Tax", "", "", "", "", "", summary.GrandTotalTax.InexactFloat64()},
		[]any{"Grand Total Net", "", "", "", "", "", "", summary.GrandTotalNet.InexactFloat64()},
	)

	return spreadsheet.Write("Uang Makan", rows, []int{4, 5, 6, 7})
}

// GenerateExtract implements allowance.Service.
func (s *allowanceServiceImpl) GenerateExtract(ctx context.Context, roster sheet.Sheet, results []allowance.CalculationResult, req allowance.ExtractRequest, replace bool) (*allowance.ExtractResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	employeeType, err := extract.ParseEmployeeType(req.EmployeeType)
	if err != nil {
		return nil, err
	}
	if roster.Empty() {
		return nil, sheet.ErrEmptySheet
	}

	if !replace {
		_, err := s.archiveRepo.FindByPeriod(ctx, string(employeeType), req.Month, req.Year)
		if err == nil {
			return nil, archive.ErrDuplicatePeriod
		}
		if !errors.Is(err, archive.ErrArchiveNotFound) {
			return nil, err
		}
	}

	content, lines := extract.Generate(roster, employeeType, req.Year, req.Month)
	fileName := fmt.Sprintf("WFO_%s_%d%02d.txt", employeeType, req.Year, req.Month)

	snapshot := make(map[string]allowance.CalculationResult)
	for _, r := range results {
		if extract.Matches(r.NIP, employeeType) {
			snapshot[r.NIP] = r
		}
	}

	saved, err := s.archiveRepo.Insert(ctx, archive.ExtractArchive{
		EmployeeType: string(employeeType),
		PeriodMonth:  req.Month,
		PeriodYear:   req.Year,
		FileName:     fileName,
		Content:      content,
		Results:      snapshot,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to archive extract: %w", err)
	}

	s.logger.Info("payment extract generated",
		"employee_type", employeeType,
		"period", fmt.Sprintf("%d-%02d", req.Year, req.Month),
		"lines", lines,
	)

	return &allowance.ExtractResponse{
		EmployeeType: string(employeeType),
		Period:       fmt.Sprintf("%d-%02d", req.Year, req.Month),
		FileName:     fileName,
		Lines:        lines,
		Content:      content,
		ArchiveID:    saved.ID,
	}, nil
}

func sortByNama(results []allowance.CalculationResult) {
	c := collate.New(language.Indonesian, collate.IgnoreCase)
	sort.SliceStable(results, func(i, j int) bool {
		return c.CompareString(results[i].Nama, results[j].Nama) < 0
	})
}
