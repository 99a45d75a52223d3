package allowance

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absensi-adk/backend-go/internal/domain/allowance"
	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/master/grade"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

type fakeGradeRepo struct {
	grades []grade.EmployeeGrade
}

func (f *fakeGradeRepo) Create(_ context.Context, g grade.EmployeeGrade) (grade.EmployeeGrade, error) {
	f.grades = append(f.grades, g)
	return g, nil
}

func (f *fakeGradeRepo) Upsert(_ context.Context, g grade.EmployeeGrade) (grade.EmployeeGrade, error) {
	f.grades = append(f.grades, g)
	return g, nil
}

func (f *fakeGradeRepo) GetByID(context.Context, string) (grade.EmployeeGrade, error) {
	return grade.EmployeeGrade{}, grade.ErrGradeNotFound
}

func (f *fakeGradeRepo) List(context.Context) ([]grade.EmployeeGrade, error) {
	return f.grades, nil
}

func (f *fakeGradeRepo) Update(context.Context, grade.UpdateEmployeeGradeRequest) error { return nil }
func (f *fakeGradeRepo) Delete(context.Context, string) error                           { return nil }

type fakeExtractArchiveRepo struct {
	archives []archive.ExtractArchive
}

func (f *fakeExtractArchiveRepo) FindByPeriod(_ context.Context, employeeType string, month, year int) (archive.ExtractArchive, error) {
	for _, a := range f.archives {
		if a.EmployeeType == employeeType && a.PeriodMonth == month && a.PeriodYear == year {
			return a, nil
		}
	}
	return archive.ExtractArchive{}, archive.ErrArchiveNotFound
}

func (f *fakeExtractArchiveRepo) Insert(_ context.Context, a archive.ExtractArchive) (archive.ExtractArchive, error) {
	a.ID = "archive-1"
	f.archives = append(f.archives, a)
	return a, nil
}

func (f *fakeExtractArchiveRepo) List(context.Context) ([]archive.ExtractArchive, error) {
	return f.archives, nil
}

func (f *fakeExtractArchiveRepo) GetByID(context.Context, string) (archive.ExtractArchive, error) {
	return archive.ExtractArchive{}, archive.ErrArchiveNotFound
}

func (f *fakeExtractArchiveRepo) Delete(context.Context, string) error { return nil }

func testService(grades ...grade.EmployeeGrade) (allowance.Service, *fakeExtractArchiveRepo) {
	archiveRepo := &fakeExtractArchiveRepo{}
	svc := NewAllowanceService(&fakeGradeRepo{grades: grades}, archiveRepo, slog.Default())
	return svc, archiveRepo
}

func testRoster() sheet.Sheet {
	return sheet.Sheet{Rows: [][]string{
		{"NAMA", "NIP", "1", "2", "3"},
		{"Budi Santoso", "'199802152025211001", "WFO", "WFH", "WFO"},
		{"Ani Rahma", "198501012010122001", "WFO", "", ""},
		{"Tidak Dikenal", "111", "WFO", "WFO", "WFO"},
	}}
}

func TestCalculate(t *testing.T) {
	svc, _ := testService(
		grade.EmployeeGrade{Nama: "Budi Santoso", NIP: "199802152025211001", Golongan: "III/a"},
		grade.EmployeeGrade{Nama: "Ani Rahma", NIP: "198501012010122001", Golongan: "II/c"},
	)

	resp, err := svc.Calculate(context.Background(), testRoster())
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	// Sorted by name: Ani before Budi.
	assert.Equal(t, "Ani Rahma", resp.Results[0].Nama)

	budi := resp.Results[1]
	assert.Equal(t, 2, budi.WFODays)
	assert.True(t, budi.GrossAmount.Equal(decimal.NewFromInt(74000)), "gross = %s", budi.GrossAmount)
	assert.True(t, budi.TaxAmount.Equal(decimal.NewFromInt(3700)), "tax = %s", budi.TaxAmount)
	assert.True(t, budi.NetAmount.Equal(decimal.NewFromInt(70300)), "net = %s", budi.NetAmount)

	ani := resp.Results[0]
	assert.True(t, ani.TaxAmount.IsZero())
	assert.True(t, ani.NetAmount.Equal(decimal.NewFromInt(36000)))

	assert.Equal(t, []string{"Tidak Dikenal"}, resp.Skipped)
	assert.Equal(t, 2, resp.Summary.TotalEmployees)
	assert.True(t, resp.Summary.GrandTotalNet.Equal(decimal.NewFromInt(106300)))
}

func TestCalculateIsIdempotent(t *testing.T) {
	svc, _ := testService(
		grade.EmployeeGrade{Nama: "Budi Santoso", NIP: "199802152025211001", Golongan: "III/a"},
	)

	first, err := svc.Calculate(context.Background(), testRoster())
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), testRoster())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateEmptyGradeReference(t *testing.T) {
	svc, _ := testService()

	resp, err := svc.Calculate(context.Background(), testRoster())
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Len(t, resp.Skipped, 3)
}

func TestCalculateEmptySheetYieldsEmptyResults(t *testing.T) {
	svc, _ := testService(
		grade.EmployeeGrade{Nama: "Budi Santoso", NIP: "199802152025211001", Golongan: "III/a"},
	)

	resp, err := svc.Calculate(context.Background(), sheet.Sheet{})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Zero(t, resp.Summary.TotalEmployees)

	headerOnly := sheet.Sheet{Rows: [][]string{{"NAMA", "NIP", "1", "2"}}}
	resp, err = svc.Calculate(context.Background(), headerOnly)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Empty(t, resp.Skipped)
}

func TestCalculateRejectsBadHeader(t *testing.T) {
	svc, _ := testService()

	bad := sheet.Sheet{Rows: [][]string{
		{"NAME", "ID", "1"},
		{"Budi", "100", "WFO"},
	}}
	_, err := svc.Calculate(context.Background(), bad)

	var hdrErr *sheet.InvalidHeaderError
	assert.ErrorAs(t, err, &hdrErr)
}

func TestCalculateExcludesReportPrefixes(t *testing.T) {
	svc, _ := testService(
		grade.EmployeeGrade{Nama: "Outsourced", NIP: "PPNPN01", Golongan: "III/a"},
	)

	roster := sheet.Sheet{Rows: [][]string{
		{"NAMA", "NIP", "1"},
		{"Outsourced", "PPNPN01", "WFO"},
	}}
	resp, err := svc.Calculate(context.Background(), roster)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Empty(t, resp.Skipped)
}

func TestReport(t *testing.T) {
	svc, _ := testService()

	data, err := svc.Report(context.Background(), []allowance.CalculationResult{
		{Nama: "Budi", NIP: "100", Golongan: "III/a", WFODays: 2,
			DailyRate:   decimal.NewFromInt(37000),
			GrossAmount: decimal.NewFromInt(74000),
			TaxAmount:   decimal.NewFromInt(3700),
			NetAmount:   decimal.NewFromInt(70300)},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestReportNoResults(t *testing.T) {
	svc, _ := testService()
	_, err := svc.Report(context.Background(), nil)
	assert.ErrorIs(t, err, allowance.ErrNoResults)
}

func TestGenerateExtract(t *testing.T) {
	svc, archiveRepo := testService()

	req := allowance.ExtractRequest{EmployeeType: "CPNS", Month: 7, Year: 2025}
	resp, err := svc.GenerateExtract(context.Background(), testRoster(), nil, req, false)
	require.NoError(t, err)

	assert.Equal(t, "WFO_CPNS_202507.txt", resp.FileName)
	assert.Equal(t, 2, resp.Lines)
	assert.Equal(t,
		"199802152025211001\t2025-07-01\n199802152025211001\t2025-07-03",
		resp.Content)
	require.Len(t, archiveRepo.archives, 1)
	assert.Equal(t, "CPNS", archiveRepo.archives[0].EmployeeType)
}

func TestGenerateExtractDuplicatePeriod(t *testing.T) {
	svc, _ := testService()

	req := allowance.ExtractRequest{EmployeeType: "CPNS", Month: 7, Year: 2025}
	_, err := svc.GenerateExtract(context.Background(), testRoster(), nil, req, false)
	require.NoError(t, err)

	_, err = svc.GenerateExtract(context.Background(), testRoster(), nil, req, false)
	assert.ErrorIs(t, err, archive.ErrDuplicatePeriod)

	// replace overwrites instead of failing
	_, err = svc.GenerateExtract(context.Background(), testRoster(), nil, req, true)
	assert.NoError(t, err)
}
