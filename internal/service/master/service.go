// Package master implements the reference-data services the calculation
// engines join against: employee grades and performance baselines.
package master

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/absensi-adk/backend-go/internal/domain/master/grade"
	"github.com/absensi-adk/backend-go/internal/domain/master/tunjangan"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

type gradeServiceImpl struct {
	repo   grade.EmployeeGradeRepository
	logger *slog.Logger
}

func NewEmployeeGradeService(repo grade.EmployeeGradeRepository, logger *slog.Logger) grade.EmployeeGradeService {
	return &gradeServiceImpl{repo: repo, logger: logger}
}

// Create implements grade.EmployeeGradeService.
func (s *gradeServiceImpl) Create(ctx context.Context, req grade.CreateEmployeeGradeRequest) (grade.EmployeeGrade, error) {
	if err := req.Validate(); err != nil {
		return grade.EmployeeGrade{}, err
	}

	return s.repo.Create(ctx, grade.EmployeeGrade{
		Nama:     req.Nama,
		NIP:      req.NIP,
		Golongan: req.Golongan,
	})
}

// List implements grade.EmployeeGradeService.
func (s *gradeServiceImpl) List(ctx context.Context) ([]grade.EmployeeGrade, error) {
	return s.repo.List(ctx)
}

// Update implements grade.EmployeeGradeService.
func (s *gradeServiceImpl) Update(ctx context.Context, req grade.UpdateEmployeeGradeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, req)
}

// Delete implements grade.EmployeeGradeService.
func (s *gradeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Import implements grade.EmployeeGradeService. The sheet must carry NIP,
// NAMA and GOLONGAN columns; rows are upserted by NIP.
func (s *gradeServiceImpl) Import(ctx context.Context, sh sheet.Sheet) (grade.ImportSummary, error) {
	nipIdx := sh.ColumnIndexFold("NIP")
	namaIdx := sh.ColumnIndexFold("NAMA")
	golonganIdx := sh.ColumnIndexFold("GOLONGAN")
	if nipIdx < 0 || namaIdx < 0 || golonganIdx < 0 {
		return grade.ImportSummary{}, fmt.Errorf("grade file must contain NIP, NAMA and GOLONGAN columns")
	}

	var summary grade.ImportSummary
	for _, row := range sh.DataRows() {
		nip := sheet.CleanNIP(sheet.Cell(row, nipIdx))
		nama := sheet.Cell(row, namaIdx)
		golongan := sheet.Cell(row, golonganIdx)
		if nip == "" || nama == "" || golongan == "" {
			summary.Skipped++
			continue
		}

		_, err := s.repo.Upsert(ctx, grade.EmployeeGrade{Nama: nama, NIP: nip, Golongan: golongan})
		if err != nil {
			s.logger.Error("failed to import employee grade", "nama", nama, "error", err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", nama, err))
			continue
		}
		summary.Imported++
	}

	s.logger.Info("grade import completed", "imported", summary.Imported, "skipped", summary.Skipped, "errors", len(summary.Errors))
	return summary, nil
}

type baselineServiceImpl struct {
	repo   tunjangan.BaselineRepository
	logger *slog.Logger
}

func NewBaselineService(repo tunjangan.BaselineRepository, logger *slog.Logger) tunjangan.BaselineService {
	return &baselineServiceImpl{repo: repo, logger: logger}
}

// Create implements tunjangan.BaselineService.
func (s *baselineServiceImpl) Create(ctx context.Context, req tunjangan.CreateBaselineRequest) (tunjangan.PerformanceBaseline, error) {
	if err := req.Validate(); err != nil {
		return tunjangan.PerformanceBaseline{}, err
	}

	return s.repo.Create(ctx, tunjangan.PerformanceBaseline{
		NIP:              req.NIP,
		Nama:             req.Nama,
		Jabatan:          req.Jabatan,
		UnitKerja:        req.UnitKerja,
		TunjanganKinerja: req.TunjanganKinerja,
	})
}

// List implements tunjangan.BaselineService.
func (s *baselineServiceImpl) List(ctx context.Context) ([]tunjangan.PerformanceBaseline, error) {
	return s.repo.List(ctx)
}

// Update implements tunjangan.BaselineService.
func (s *baselineServiceImpl) Update(ctx context.Context, req tunjangan.UpdateBaselineRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, req)
}

// Delete implements tunjangan.BaselineService.
func (s *baselineServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// parseAmount reads an Indonesian-formatted amount: Rp marker and
// thousands dots stripped, decimal comma converted.
func parseAmount(value string) decimal.Decimal {
	cleaned := strings.NewReplacer("Rp", "", ".", "", " ", "").Replace(value)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Import implements tunjangan.BaselineService. The payroll export carries
// nip, nama, kdgrade and jumlah columns; kdgrade becomes the jabatan
// grade label and jumlah the monthly allowance. Rows without a positive
// amount are skipped.
func (s *baselineServiceImpl) Import(ctx context.Context, sh sheet.Sheet) (tunjangan.ImportSummary, error) {
	nipIdx := sh.ColumnIndexFold("nip")
	namaIdx := sh.ColumnIndexFold("nama")
	gradeIdx := sh.ColumnIndexFold("kdgrade")
	jumlahIdx := sh.ColumnIndexFold("jumlah")
	if nipIdx < 0 || namaIdx < 0 || gradeIdx < 0 || jumlahIdx < 0 {
		return tunjangan.ImportSummary{}, fmt.Errorf("baseline file must contain nip, kdgrade, jumlah and nama columns")
	}

	var summary tunjangan.ImportSummary
	for _, row := range sh.DataRows() {
		nip := sheet.CleanNIP(sheet.Cell(row, nipIdx))
		nama := sheet.Cell(row, namaIdx)
		kdgrade := sheet.Cell(row, gradeIdx)

		amount := parseAmount(sheet.Cell(row, jumlahIdx))
		if nip == "" || nama == "" || kdgrade == "" || !amount.IsPositive() {
			summary.Skipped++
			continue
		}

		_, err := s.repo.Upsert(ctx, tunjangan.PerformanceBaseline{
			NIP:              nip,
			Nama:             nama,
			Jabatan:          fmt.Sprintf("Grade %s", kdgrade),
			TunjanganKinerja: amount,
		})
		if err != nil {
			s.logger.Error("failed to import baseline", "nama", nama, "error", err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", nama, err))
			continue
		}
		summary.Imported++
	}

	s.logger.Info("baseline import completed", "imported", summary.Imported, "skipped", summary.Skipped, "errors", len(summary.Errors))
	return summary, nil
}
