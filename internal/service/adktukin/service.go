package adktukin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/absensi-adk/backend-go/internal/domain/adktukin"
	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
	"github.com/absensi-adk/backend-go/internal/pkg/spreadsheet"
	"github.com/absensi-adk/backend-go/internal/pkg/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type adkTukinServiceImpl struct {
	templateRepo archive.TukinTemplateRepository
	archiveRepo  archive.TukinArchiveRepository
	fileStorage  storage.FileStorage
	logger       *slog.Logger
}

func NewADKTukinService(
	templateRepo archive.TukinTemplateRepository,
	archiveRepo archive.TukinArchiveRepository,
	fileStorage storage.FileStorage,
	logger *slog.Logger,
) adktukin.Service {
	return &adkTukinServiceImpl{
		templateRepo: templateRepo,
		archiveRepo:  archiveRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// StoreTemplate implements adktukin.Service.
func (s *adkTukinServiceImpl) StoreTemplate(ctx context.Context, employeeType string, month, year int, fileName string, sh sheet.Sheet, replace bool) (archive.TukinTemplate, error) {
	if !adktukin.ValidTemplateType(employeeType) {
		return archive.TukinTemplate{}, fmt.Errorf("%w: %q", adktukin.ErrUnknownTemplateType, employeeType)
	}
	if sh.Empty() {
		return archive.TukinTemplate{}, sheet.ErrEmptySheet
	}

	if !replace {
		_, err := s.templateRepo.FindByPeriod(ctx, employeeType, month, year)
		if err == nil {
			return archive.TukinTemplate{}, archive.ErrDuplicatePeriod
		}
		if !errors.Is(err, archive.ErrTemplateNotFound) {
			return archive.TukinTemplate{}, err
		}
	}

	stored, err := s.templateRepo.Upsert(ctx, archive.TukinTemplate{
		EmployeeType: employeeType,
		PeriodMonth:  month,
		PeriodYear:   year,
		FileName:     fileName,
		Rows:         sh.Rows,
	})
	if err != nil {
		return archive.TukinTemplate{}, fmt.Errorf("failed to store template: %w", err)
	}

	s.logger.Info("treasury template stored",
		"employee_type", employeeType,
		"period", fmt.Sprintf("%d-%02d", year, month),
		"rows", len(sh.Rows),
	)
	return stored, nil
}

// ListTemplates implements adktukin.Service.
func (s *adkTukinServiceImpl) ListTemplates(ctx context.Context) ([]archive.TukinTemplate, error) {
	return s.templateRepo.List(ctx)
}

// Generate implements adktukin.Service.
func (s *adkTukinServiceImpl) Generate(ctx context.Context, req adktukin.GenerateRequest, confirmations sheet.Sheet, replace bool) ([]byte, *adktukin.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	if confirmations.Empty() {
		return nil, nil, adktukin.ErrNoConfirmationData
	}

	template, err := s.templateRepo.FindByPeriod(ctx, req.EmployeeType, req.Month, req.Year)
	if errors.Is(err, archive.ErrTemplateNotFound) {
		return nil, nil, adktukin.ErrTemplateNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if !replace {
		_, err := s.archiveRepo.FindByPeriod(ctx, req.EmployeeType, req.Month, req.Year)
		if err == nil {
			return nil, nil, archive.ErrDuplicatePeriod
		}
		if !errors.Is(err, archive.ErrArchiveNotFound) {
			return nil, nil, err
		}
	}

	rows, err := adktukin.RowsFromSheet(confirmations)
	if err != nil {
		return nil, nil, err
	}

	reconciled, matched, err := adktukin.Reconcile(template.Rows, rows, req.Month)
	if err != nil {
		return nil, nil, err
	}

	sheetName := fmt.Sprintf("ADK Tukin %s", req.EmployeeType)
	data, err := spreadsheet.Write(sheetName, spreadsheet.StringGrid(reconciled), nil)
	if err != nil {
		return nil, nil, err
	}

	fileName := adktukin.FileName(req.EmployeeType, req.Year, req.Month)
	// unique stored path so regenerating a period never clobbers a file
	// an archive row still points at
	storedPath := fmt.Sprintf("adk-tukin/%s_%s", uuid.New().String(), fileName)
	path, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), storedPath, xlsxContentType)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store generated file: %w", err)
	}

	saved, err := s.archiveRepo.Insert(ctx, archive.TukinArchive{
		EmployeeType: req.EmployeeType,
		PeriodMonth:  req.Month,
		PeriodYear:   req.Year,
		FileName:     fileName,
		FilePath:     path,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to archive generated file: %w", err)
	}

	s.logger.Info("adk tukin file generated",
		"employee_type", req.EmployeeType,
		"period", fmt.Sprintf("%d-%02d", req.Year, req.Month),
		"matched_rows", matched,
	)

	return data, &adktukin.GenerateResponse{
		FileName:    fileName,
		MatchedRows: matched,
		TotalRows:   len(reconciled) - 1,
		ArchiveID:   saved.ID,
	}, nil
}
