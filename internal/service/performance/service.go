package performance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/attendance"
	"github.com/absensi-adk/backend-go/internal/domain/eligibility"
	"github.com/absensi-adk/backend-go/internal/domain/master/tunjangan"
	"github.com/absensi-adk/backend-go/internal/domain/performance"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
	"github.com/absensi-adk/backend-go/internal/pkg/spreadsheet"
	"github.com/absensi-adk/backend-go/internal/pkg/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var reportHeaders = []string{
	"NAMA", "NIP", "KETERANGAN", "TOTAL DAYS",
	"A", "T1", "T2", "T3", "T4", "P1", "P2", "P3", "P4", "CUTI", "TL", "HADIR",
	"TUNJANGAN BEFORE", "CUT %", "NOMINAL CUT", "TUNJANGAN AFTER",
}

type performanceServiceImpl struct {
	baselineRepo tunjangan.BaselineRepository
	archiveRepo  archive.ReportArchiveRepository
	fileStorage  storage.FileStorage
	logger       *slog.Logger
}

func NewPerformanceService(
	baselineRepo tunjangan.BaselineRepository,
	archiveRepo archive.ReportArchiveRepository,
	fileStorage storage.FileStorage,
	logger *slog.Logger,
) performance.Service {
	return &performanceServiceImpl{
		baselineRepo: baselineRepo,
		archiveRepo:  archiveRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// Calculate implements performance.Service.
func (s *performanceServiceImpl) Calculate(ctx context.Context, checkins sheet.Sheet) (*performance.CalculateResponse, error) {
	if checkins.Empty() {
		return nil, sheet.ErrEmptySheet
	}

	rows, err := attendance.RowsFromSheet(checkins)
	if err != nil {
		return nil, err
	}
	records := attendance.Aggregate(rows)

	baselines, err := s.baselineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline reference: %w", err)
	}

	byNIP := make(map[string]tunjangan.PerformanceBaseline, len(baselines))
	byNama := make(map[string]tunjangan.PerformanceBaseline, len(baselines))
	for _, b := range baselines {
		byNIP[b.NIP] = b
		byNama[strings.ToLower(strings.TrimSpace(b.Nama))] = b
	}

	lines := make([]performance.Line, 0, len(records))
	for _, rec := range records {
		if eligibility.Reports.Excluded(rec.NIP) {
			continue
		}
		baseline, ok := byNIP[rec.NIP]
		if !ok {
			baseline, ok = byNama[strings.ToLower(rec.Nama)]
		}
		if !ok {
			s.logger.Warn("no baseline for employee, allowance defaults to zero",
				"nama", rec.Nama, "nip", rec.NIP)
		}

		d := attendance.ApplyDeduction(baseline.TunjanganKinerja, rec.Counts)
		lines = append(lines, performance.Line{
			Nama:            rec.Nama,
			NIP:             rec.NIP,
			Keterangan:      rec.Keterangan(),
			TotalDays:       rec.TotalDays,
			Counts:          rec.Counts,
			CutPercentage:   d.CutPercentage,
			TunjanganBefore: d.Before,
			NominalCut:      d.NominalCut.Round(0),
			TunjanganAfter:  d.After.Round(0),
		})
	}

	return &performance.CalculateResponse{Lines: lines}, nil
}

// Report implements performance.Service.
func (s *performanceServiceImpl) Report(ctx context.Context, lines []performance.Line, req performance.ReportRequest, replace bool) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	if len(lines) == 0 {
		return nil, "", performance.ErrNoLines
	}

	start, end := periodDates(req.Year, req.Month)

	if !replace {
		_, err := s.archiveRepo.FindByPeriod(ctx, start, end)
		if err == nil {
			return nil, "", archive.ErrDuplicatePeriod
		}
		if !errors.Is(err, archive.ErrArchiveNotFound) {
			return nil, "", err
		}
	}

	rows := make([][]any, 0, len(lines)+1)
	rows = append(rows, spreadsheet.StringGrid([][]string{reportHeaders})[0])
	for _, l := range lines {
		if eligibility.Reports.Excluded(l.NIP) {
			continue
		}
		row := []any{l.Nama, l.NIP, l.Keterangan, l.TotalDays}
		for _, c := range attendance.Categories {
			row = append(row, l.Counts[c])
		}
		row = append(row,
			l.TunjanganBefore.InexactFloat64(),
			fmt.Sprintf("%s%%", l.CutPercentage.StringFixed(1)),
			l.NominalCut.InexactFloat64(),
			l.TunjanganAfter.InexactFloat64(),
		)
		rows = append(rows, row)
	}

	data, err := spreadsheet.Write("Attendance Results", rows, []int{16, 18, 19})
	if err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("tunjangan_kinerja_calculation_%d%02d_%s.xlsx",
		req.Year, req.Month, time.Now().Format("2006-01-02"))

	// unique stored path so regenerating a period never clobbers a file
	// an archive row still points at
	storedPath := fmt.Sprintf("reports/%s_%s", uuid.New().String(), fileName)
	path, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), storedPath, xlsxContentType)
	if err != nil {
		return nil, "", fmt.Errorf("failed to store report: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)
	_, err = s.archiveRepo.Insert(ctx, archive.ReportArchive{
		PeriodStart: startDate,
		PeriodEnd:   endDate,
		FileName:    fileName,
		FilePath:    path,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to archive report: %w", err)
	}

	s.logger.Info("performance report archived",
		"period", fmt.Sprintf("%d-%02d", req.Year, req.Month),
		"rows", len(rows)-1,
	)

	return data, fileName, nil
}

// periodDates returns the first and last day of the calendar month as
// YYYY-MM-DD strings.
func periodDates(year, month int) (string, string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}
