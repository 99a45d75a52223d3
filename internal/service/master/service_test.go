package master

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absensi-adk/backend-go/internal/domain/master/grade"
	"github.com/absensi-adk/backend-go/internal/domain/master/tunjangan"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

type fakeGradeRepo struct {
	byNIP map[string]grade.EmployeeGrade
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{byNIP: make(map[string]grade.EmployeeGrade)}
}

func (f *fakeGradeRepo) Create(_ context.Context, g grade.EmployeeGrade) (grade.EmployeeGrade, error) {
	if _, ok := f.byNIP[g.NIP]; ok {
		return grade.EmployeeGrade{}, grade.ErrDuplicateNIP
	}
	f.byNIP[g.NIP] = g
	return g, nil
}

func (f *fakeGradeRepo) Upsert(_ context.Context, g grade.EmployeeGrade) (grade.EmployeeGrade, error) {
	f.byNIP[g.NIP] = g
	return g, nil
}

func (f *fakeGradeRepo) GetByID(context.Context, string) (grade.EmployeeGrade, error) {
	return grade.EmployeeGrade{}, grade.ErrGradeNotFound
}

func (f *fakeGradeRepo) List(context.Context) ([]grade.EmployeeGrade, error) {
	var out []grade.EmployeeGrade
	for _, g := range f.byNIP {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGradeRepo) Update(context.Context, grade.UpdateEmployeeGradeRequest) error { return nil }
func (f *fakeGradeRepo) Delete(context.Context, string) error                           { return nil }

type fakeBaselineRepo struct {
	byNIP map[string]tunjangan.PerformanceBaseline
}

func newFakeBaselineRepo() *fakeBaselineRepo {
	return &fakeBaselineRepo{byNIP: make(map[string]tunjangan.PerformanceBaseline)}
}

func (f *fakeBaselineRepo) Create(_ context.Context, b tunjangan.PerformanceBaseline) (tunjangan.PerformanceBaseline, error) {
	f.byNIP[b.NIP] = b
	return b, nil
}

func (f *fakeBaselineRepo) Upsert(_ context.Context, b tunjangan.PerformanceBaseline) (tunjangan.PerformanceBaseline, error) {
	f.byNIP[b.NIP] = b
	return b, nil
}

func (f *fakeBaselineRepo) GetByID(context.Context, string) (tunjangan.PerformanceBaseline, error) {
	return tunjangan.PerformanceBaseline{}, tunjangan.ErrBaselineNotFound
}

func (f *fakeBaselineRepo) List(context.Context) ([]tunjangan.PerformanceBaseline, error) {
	return nil, nil
}

func (f *fakeBaselineRepo) Update(context.Context, tunjangan.UpdateBaselineRequest) error { return nil }
func (f *fakeBaselineRepo) Delete(context.Context, string) error                          { return nil }

func TestGradeCreateValidates(t *testing.T) {
	svc := NewEmployeeGradeService(newFakeGradeRepo(), slog.Default())

	_, err := svc.Create(context.Background(), grade.CreateEmployeeGradeRequest{})
	assert.Error(t, err)

	created, err := svc.Create(context.Background(), grade.CreateEmployeeGradeRequest{
		Nama: "Budi", NIP: "100", Golongan: "III/a",
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi", created.Nama)
}

func TestGradeImport(t *testing.T) {
	repo := newFakeGradeRepo()
	svc := NewEmployeeGradeService(repo, slog.Default())

	sh := sheet.Sheet{Rows: [][]string{
		{"NIP", "NAMA", "GOLONGAN"},
		{"'100", "Budi", "III/a"},
		{"200", "Ani", "II/c"},
		{"", "No NIP", "III/a"},
		{"100", "Budi Updated", "III/b"},
	}}

	summary, err := svc.Import(context.Background(), sh)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)

	// Last upsert wins for duplicate NIPs.
	assert.Equal(t, "Budi Updated", repo.byNIP["100"].Nama)
	assert.Equal(t, "III/b", repo.byNIP["100"].Golongan)
}

func TestGradeImportMissingColumns(t *testing.T) {
	svc := NewEmployeeGradeService(newFakeGradeRepo(), slog.Default())

	sh := sheet.Sheet{Rows: [][]string{{"NIP", "NAMA"}}}
	_, err := svc.Import(context.Background(), sh)
	assert.Error(t, err)
}

func TestBaselineImport(t *testing.T) {
	repo := newFakeBaselineRepo()
	svc := NewBaselineService(repo, slog.Default())

	sh := sheet.Sheet{Rows: [][]string{
		{"nip", "nama", "kdgrade", "jumlah"},
		{"100", "Budi", "7", "Rp5.194.900"},
		{"200", "Ani", "5", "0"},
		{"300", "Cici", "9", "3500000"},
	}}

	summary, err := svc.Import(context.Background(), sh)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)

	budi := repo.byNIP["100"]
	assert.Equal(t, "Grade 7", budi.Jabatan)
	assert.True(t, budi.TunjanganKinerja.Equal(decimal.NewFromInt(5194900)), "amount = %s", budi.TunjanganKinerja)
}

func TestBaselineCreateRejectsNegative(t *testing.T) {
	svc := NewBaselineService(newFakeBaselineRepo(), slog.Default())

	_, err := svc.Create(context.Background(), tunjangan.CreateBaselineRequest{
		NIP: "100", Nama: "Budi", TunjanganKinerja: decimal.NewFromInt(-1),
	})
	assert.Error(t, err)
}
