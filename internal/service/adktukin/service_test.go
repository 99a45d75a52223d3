package adktukin

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absensi-adk/backend-go/internal/domain/adktukin"
	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

type fakeTemplateRepo struct {
	templates []archive.TukinTemplate
}

func (f *fakeTemplateRepo) FindByPeriod(_ context.Context, employeeType string, month, year int) (archive.TukinTemplate, error) {
	for _, t := range f.templates {
		if t.EmployeeType == employeeType && t.PeriodMonth == month && t.PeriodYear == year {
			return t, nil
		}
	}
	return archive.TukinTemplate{}, archive.ErrTemplateNotFound
}

func (f *fakeTemplateRepo) Upsert(_ context.Context, t archive.TukinTemplate) (archive.TukinTemplate, error) {
	t.ID = "template-1"
	for i, existing := range f.templates {
		if existing.EmployeeType == t.EmployeeType && existing.PeriodMonth == t.PeriodMonth && existing.PeriodYear == t.PeriodYear {
			f.templates[i] = t
			return t, nil
		}
	}
	f.templates = append(f.templates, t)
	return t, nil
}

func (f *fakeTemplateRepo) List(context.Context) ([]archive.TukinTemplate, error) {
	return f.templates, nil
}

func (f *fakeTemplateRepo) Delete(context.Context, string) error { return nil }

type fakeTukinArchiveRepo struct {
	archives []archive.TukinArchive
}

func (f *fakeTukinArchiveRepo) FindByPeriod(_ context.Context, employeeType string, month, year int) (archive.TukinArchive, error) {
	for _, a := range f.archives {
		if a.EmployeeType == employeeType && a.PeriodMonth == month && a.PeriodYear == year {
			return a, nil
		}
	}
	return archive.TukinArchive{}, archive.ErrArchiveNotFound
}

func (f *fakeTukinArchiveRepo) Insert(_ context.Context, a archive.TukinArchive) (archive.TukinArchive, error) {
	a.ID = "tukin-1"
	f.archives = append(f.archives, a)
	return a, nil
}

func (f *fakeTukinArchiveRepo) List(context.Context) ([]archive.TukinArchive, error) {
	return f.archives, nil
}

func (f *fakeTukinArchiveRepo) GetByID(context.Context, string) (archive.TukinArchive, error) {
	return archive.TukinArchive{}, archive.ErrArchiveNotFound
}

func (f *fakeTukinArchiveRepo) Delete(context.Context, string) error { return nil }

type fakeStorage struct{}

func (fakeStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	return path, nil
}

func (fakeStorage) Download(context.Context, string) (io.ReadCloser, error) { return nil, nil }
func (fakeStorage) Delete(context.Context, string) error                    { return nil }
func (fakeStorage) GetURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}
func (fakeStorage) Exists(context.Context, string) (bool, error) { return false, nil }

func testService() (adktukin.Service, *fakeTemplateRepo, *fakeTukinArchiveRepo) {
	templateRepo := &fakeTemplateRepo{}
	archiveRepo := &fakeTukinArchiveRepo{}
	svc := NewADKTukinService(templateRepo, archiveRepo, fakeStorage{}, slog.Default())
	return svc, templateRepo, archiveRepo
}

func templateSheet() sheet.Sheet {
	header := make([]string, 17)
	header[0] = "KODE"
	row := make([]string, 17)
	row[0] = "025"
	row[3] = "100200300"
	return sheet.Sheet{Rows: [][]string{header, row}}
}

func confirmationSheet() sheet.Sheet {
	return sheet.Sheet{Rows: [][]string{
		{"No", "Nama", "NIP", "Tunkin", "Total Potongan"},
		{"1", "Budi", "100200300", "Rp5.194.900,00", "Rp194.900,00"},
	}}
}

func TestStoreTemplate(t *testing.T) {
	svc, templateRepo, _ := testService()

	stored, err := svc.StoreTemplate(context.Background(), "CPNS Mandiri", 7, 2025, "template.xlsx", templateSheet(), false)
	require.NoError(t, err)
	assert.Equal(t, "template-1", stored.ID)
	assert.Len(t, templateRepo.templates, 1)
}

func TestStoreTemplateOccupiedSlot(t *testing.T) {
	svc, templateRepo, _ := testService()

	_, err := svc.StoreTemplate(context.Background(), "PNS", 7, 2025, "first.xlsx", templateSheet(), false)
	require.NoError(t, err)

	_, err = svc.StoreTemplate(context.Background(), "PNS", 7, 2025, "second.xlsx", templateSheet(), false)
	assert.ErrorIs(t, err, archive.ErrDuplicatePeriod)
	assert.Equal(t, "first.xlsx", templateRepo.templates[0].FileName)

	stored, err := svc.StoreTemplate(context.Background(), "PNS", 7, 2025, "second.xlsx", templateSheet(), true)
	require.NoError(t, err)
	assert.Equal(t, "second.xlsx", stored.FileName)
	assert.Len(t, templateRepo.templates, 1)
}

func TestStoreTemplateUnknownType(t *testing.T) {
	svc, _, _ := testService()

	_, err := svc.StoreTemplate(context.Background(), "Honorer", 7, 2025, "t.xlsx", templateSheet(), false)
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	svc, _, archiveRepo := testService()

	_, err := svc.StoreTemplate(context.Background(), "CPNS Mandiri", 7, 2025, "template.xlsx", templateSheet(), false)
	require.NoError(t, err)

	req := adktukin.GenerateRequest{EmployeeType: "CPNS Mandiri", Month: 7, Year: 2025}
	data, resp, err := svc.Generate(context.Background(), req, confirmationSheet(), false)
	require.NoError(t, err)

	assert.NotEmpty(t, data)
	assert.Equal(t, "ADK-TUKIN-CPNS-MANDIRI-202507.xlsx", resp.FileName)
	assert.Equal(t, 1, resp.MatchedRows)
	assert.Equal(t, 1, resp.TotalRows)
	assert.Len(t, archiveRepo.archives, 1)
}

func TestGenerateWithoutTemplate(t *testing.T) {
	svc, _, _ := testService()

	req := adktukin.GenerateRequest{EmployeeType: "PNS", Month: 7, Year: 2025}
	_, _, err := svc.Generate(context.Background(), req, confirmationSheet(), false)
	assert.ErrorIs(t, err, adktukin.ErrTemplateNotFound)
}

func TestGenerateDuplicatePeriod(t *testing.T) {
	svc, _, _ := testService()

	_, err := svc.StoreTemplate(context.Background(), "PPPK", 7, 2025, "template.xlsx", templateSheet(), false)
	require.NoError(t, err)

	req := adktukin.GenerateRequest{EmployeeType: "PPPK", Month: 7, Year: 2025}
	_, _, err = svc.Generate(context.Background(), req, confirmationSheet(), false)
	require.NoError(t, err)

	_, _, err = svc.Generate(context.Background(), req, confirmationSheet(), false)
	assert.ErrorIs(t, err, archive.ErrDuplicatePeriod)

	_, _, err = svc.Generate(context.Background(), req, confirmationSheet(), true)
	assert.NoError(t, err)
}
