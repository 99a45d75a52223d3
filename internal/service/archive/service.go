package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/pkg/storage"
)

const (
	textContentType = "text/plain"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type archiveServiceImpl struct {
	extractRepo archive.ExtractArchiveRepository
	reportRepo  archive.ReportArchiveRepository
	tukinRepo   archive.TukinArchiveRepository
	fileStorage storage.FileStorage
	logger      *slog.Logger
}

func NewArchiveService(
	extractRepo archive.ExtractArchiveRepository,
	reportRepo archive.ReportArchiveRepository,
	tukinRepo archive.TukinArchiveRepository,
	fileStorage storage.FileStorage,
	logger *slog.Logger,
) archive.Service {
	return &archiveServiceImpl{
		extractRepo: extractRepo,
		reportRepo:  reportRepo,
		tukinRepo:   tukinRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// ListExtracts implements archive.Service.
func (s *archiveServiceImpl) ListExtracts(ctx context.Context) ([]archive.ExtractArchive, error) {
	return s.extractRepo.List(ctx)
}

// DownloadExtract implements archive.Service. Extract text lives in the
// database, not on disk.
func (s *archiveServiceImpl) DownloadExtract(ctx context.Context, id string) (archive.Download, error) {
	a, err := s.extractRepo.GetByID(ctx, id)
	if err != nil {
		return archive.Download{}, err
	}
	return archive.Download{
		FileName:    a.FileName,
		ContentType: textContentType,
		Data:        []byte(a.Content),
	}, nil
}

// DeleteExtract implements archive.Service.
func (s *archiveServiceImpl) DeleteExtract(ctx context.Context, id string) error {
	if err := s.extractRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("extract archive deleted", "id", id)
	return nil
}

// ListReports implements archive.Service.
func (s *archiveServiceImpl) ListReports(ctx context.Context) ([]archive.ReportArchive, error) {
	return s.reportRepo.List(ctx)
}

// DownloadReport implements archive.Service.
func (s *archiveServiceImpl) DownloadReport(ctx context.Context, id string) (archive.Download, error) {
	a, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return archive.Download{}, err
	}
	data, err := s.readFile(ctx, a.FilePath)
	if err != nil {
		return archive.Download{}, err
	}
	return archive.Download{
		FileName:    a.FileName,
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}

// DeleteReport implements archive.Service. The stored file goes with the
// row; a missing file is not an error.
func (s *archiveServiceImpl) DeleteReport(ctx context.Context, id string) error {
	a, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.fileStorage.Delete(ctx, a.FilePath); err != nil {
		s.logger.Warn("failed to remove archived report file", "path", a.FilePath, "error", err)
	}
	s.logger.Info("report archive deleted", "id", id)
	return nil
}

// ListTukin implements archive.Service.
func (s *archiveServiceImpl) ListTukin(ctx context.Context) ([]archive.TukinArchive, error) {
	return s.tukinRepo.List(ctx)
}

// DownloadTukin implements archive.Service.
func (s *archiveServiceImpl) DownloadTukin(ctx context.Context, id string) (archive.Download, error) {
	a, err := s.tukinRepo.GetByID(ctx, id)
	if err != nil {
		return archive.Download{}, err
	}
	data, err := s.readFile(ctx, a.FilePath)
	if err != nil {
		return archive.Download{}, err
	}
	return archive.Download{
		FileName:    a.FileName,
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}

// DeleteTukin implements archive.Service.
func (s *archiveServiceImpl) DeleteTukin(ctx context.Context, id string) error {
	a, err := s.tukinRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tukinRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.fileStorage.Delete(ctx, a.FilePath); err != nil {
		s.logger.Warn("failed to remove archived tukin file", "path", a.FilePath, "error", err)
	}
	s.logger.Info("tukin archive deleted", "id", id)
	return nil
}

func (s *archiveServiceImpl) readFile(ctx context.Context, path string) ([]byte, error) {
	rc, err := s.fileStorage.Download(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archived file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived file: %w", err)
	}
	return data, nil
}
