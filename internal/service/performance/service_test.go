package performance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/master/tunjangan"
	"github.com/absensi-adk/backend-go/internal/domain/performance"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

type fakeBaselineRepo struct {
	baselines []tunjangan.PerformanceBaseline
}

func (f *fakeBaselineRepo) Create(_ context.Context, b tunjangan.PerformanceBaseline) (tunjangan.PerformanceBaseline, error) {
	f.baselines = append(f.baselines, b)
	return b, nil
}

func (f *fakeBaselineRepo) Upsert(_ context.Context, b tunjangan.PerformanceBaseline) (tunjangan.PerformanceBaseline, error) {
	f.baselines = append(f.baselines, b)
	return b, nil
}

func (f *fakeBaselineRepo) GetByID(context.Context, string) (tunjangan.PerformanceBaseline, error) {
	return tunjangan.PerformanceBaseline{}, tunjangan.ErrBaselineNotFound
}

func (f *fakeBaselineRepo) List(context.Context) ([]tunjangan.PerformanceBaseline, error) {
	return f.baselines, nil
}

func (f *fakeBaselineRepo) Update(context.Context, tunjangan.UpdateBaselineRequest) error { return nil }
func (f *fakeBaselineRepo) Delete(context.Context, string) error                          { return nil }

type fakeReportArchiveRepo struct {
	archives []archive.ReportArchive
}

func (f *fakeReportArchiveRepo) FindByPeriod(_ context.Context, start, end string) (archive.ReportArchive, error) {
	for _, a := range f.archives {
		if a.PeriodStart.Format("2006-01-02") == start && a.PeriodEnd.Format("2006-01-02") == end {
			return a, nil
		}
	}
	return archive.ReportArchive{}, archive.ErrArchiveNotFound
}

func (f *fakeReportArchiveRepo) Insert(_ context.Context, a archive.ReportArchive) (archive.ReportArchive, error) {
	a.ID = "report-1"
	f.archives = append(f.archives, a)
	return a, nil
}

func (f *fakeReportArchiveRepo) List(context.Context) ([]archive.ReportArchive, error) {
	return f.archives, nil
}

func (f *fakeReportArchiveRepo) GetByID(context.Context, string) (archive.ReportArchive, error) {
	return archive.ReportArchive{}, archive.ErrArchiveNotFound
}

func (f *fakeReportArchiveRepo) Delete(context.Context, string) error { return nil }

type fakeStorage struct {
	files map[string][]byte
}

func (f *fakeStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (string, error) {
	if f.files == nil {
		f.files = make(map[string][]byte)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.files[path] = data
	return path, nil
}

func (f *fakeStorage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(nil), nil
}

func (f *fakeStorage) Delete(_ context.Context, path string) error {
	delete(f.files, path)
	return nil
}

func (f *fakeStorage) GetURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}

func (f *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func testService(baselines ...tunjangan.PerformanceBaseline) (performance.Service, *fakeReportArchiveRepo) {
	archiveRepo := &fakeReportArchiveRepo{}
	svc := NewPerformanceService(&fakeBaselineRepo{baselines: baselines}, archiveRepo, &fakeStorage{}, slog.Default())
	return svc, archiveRepo
}

func checkinSheet(rows ...[]string) sheet.Sheet {
	all := [][]string{{"NAMA", "NIP_BARU", "TANGGAL_WITA", "JENIS_CHECKIN", "KATEGORI_TERLAMBAT", "KATEGORI_PULANG_CEPAT"}}
	return sheet.Sheet{Rows: append(all, rows...)}
}

func TestCalculate(t *testing.T) {
	svc, _ := testService(
		tunjangan.PerformanceBaseline{NIP: "100", Nama: "Budi", TunjanganKinerja: decimal.NewFromInt(5000000)},
	)

	s := checkinSheet(
		[]string{"Budi", "100", "2025-07-01", "HADIR", "T2", ""},
		[]string{"Budi", "100", "2025-07-02", "HADIR", "T2", ""},
		[]string{"Budi", "100", "2025-07-03", "HADIR", "", ""},
	)

	resp, err := svc.Calculate(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.Equal(t, 3, line.TotalDays)
	assert.True(t, line.CutPercentage.Equal(decimal.NewFromInt(2)), "cut = %s", line.CutPercentage)
	assert.True(t, line.TunjanganAfter.Equal(decimal.NewFromInt(4900000)), "after = %s", line.TunjanganAfter)
	assert.True(t, line.NominalCut.Equal(decimal.NewFromInt(100000)))
	assert.Contains(t, line.Keterangan, "T2:2")
	assert.Contains(t, line.Keterangan, "HADIR:3")
}

func TestCalculateMissingBaselineDefaultsToZero(t *testing.T) {
	svc, _ := testService()

	s := checkinSheet(
		[]string{"Ani", "200", "2025-07-01", "A", "", ""},
	)

	resp, err := svc.Calculate(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.True(t, line.TunjanganBefore.IsZero())
	assert.True(t, line.TunjanganAfter.IsZero())
	assert.True(t, line.CutPercentage.Equal(decimal.NewFromInt(5)))
}

func TestCalculateExcludesReportPrefixes(t *testing.T) {
	svc, _ := testService(
		tunjangan.PerformanceBaseline{NIP: "100", Nama: "Budi", TunjanganKinerja: decimal.NewFromInt(5000000)},
	)

	s := checkinSheet(
		[]string{"Budi", "100", "2025-07-01", "HADIR", "", ""},
		[]string{"Outsourced", "TATT001", "2025-07-01", "HADIR", "", ""},
		[]string{"Security", "PPNPN02", "2025-07-01", "A", "", ""},
	)

	resp, err := svc.Calculate(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "100", resp.Lines[0].NIP)
}

func TestCalculateMatchesBaselineByName(t *testing.T) {
	svc, _ := testService(
		tunjangan.PerformanceBaseline{NIP: "different-nip", Nama: "Budi", TunjanganKinerja: decimal.NewFromInt(1000000)},
	)

	s := checkinSheet(
		[]string{"Budi", "100", "2025-07-01", "HADIR", "", ""},
	)

	resp, err := svc.Calculate(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].TunjanganBefore.Equal(decimal.NewFromInt(1000000)))
}

func testLines() []performance.Line {
	return []performance.Line{
		{
			Nama: "Budi", NIP: "100", Keterangan: "A:0", TotalDays: 20,
			Counts:          map[string]int{"HADIR": 20},
			CutPercentage:   decimal.Zero,
			TunjanganBefore: decimal.NewFromInt(5000000),
			NominalCut:      decimal.Zero,
			TunjanganAfter:  decimal.NewFromInt(5000000),
		},
		{
			Nama: "Outsourced", NIP: "PPNPN01", TotalDays: 20,
			Counts: map[string]int{"HADIR": 20},
		},
	}
}

func TestReport(t *testing.T) {
	svc, archiveRepo := testService()

	req := performance.ReportRequest{Month: 7, Year: 2025}
	data, fileName, err := svc.Report(context.Background(), testLines(), req, false)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, fileName, "tunjangan_kinerja_calculation_202507")

	require.Len(t, archiveRepo.archives, 1)
	a := archiveRepo.archives[0]
	assert.Equal(t, "2025-07-01", a.PeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2025-07-31", a.PeriodEnd.Format("2006-01-02"))
}

func TestReportDuplicatePeriod(t *testing.T) {
	svc, _ := testService()

	req := performance.ReportRequest{Month: 7, Year: 2025}
	_, _, err := svc.Report(context.Background(), testLines(), req, false)
	require.NoError(t, err)

	_, _, err = svc.Report(context.Background(), testLines(), req, false)
	assert.ErrorIs(t, err, archive.ErrDuplicatePeriod)

	_, _, err = svc.Report(context.Background(), testLines(), req, true)
	assert.NoError(t, err)
}

func TestReportNoLines(t *testing.T) {
	svc, _ := testService()
	_, _, err := svc.Report(context.Background(), nil, performance.ReportRequest{Month: 1, Year: 2025}, false)
	assert.ErrorIs(t, err, performance.ErrNoLines)
}
