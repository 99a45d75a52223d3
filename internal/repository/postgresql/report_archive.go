package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/pkg/database"
)

type reportArchiveRepositoryImpl struct {
	db *database.DB
}

func NewReportArchiveRepository(db *database.DB) archive.ReportArchiveRepository {
	return &reportArchiveRepositoryImpl{db: db}
}

// FindByPeriod implements archive.ReportArchiveRepository.
func (r *reportArchiveRepositoryImpl) FindByPeriod(ctx context.Context, start, end string) (archive.ReportArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, file_name, file_path, created_at
		FROM tunjangan_archives
		WHERE period_start = $1 AND period_end = $2
	`

	return scanReportArchive(q.QueryRow(ctx, query, start, end))
}

// Insert implements archive.ReportArchiveRepository.
func (r *reportArchiveRepositoryImpl) Insert(ctx context.Context, a archive.ReportArchive) (archive.ReportArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tunjangan_archives (id, period_start, period_end, file_name, file_path)
		VALUES (uuidv7(), $1, $2, $3, $4)
		ON CONFLICT (period_start, period_end) DO UPDATE
		SET file_name = EXCLUDED.file_name,
			file_path = EXCLUDED.file_path,
			created_at = now()
		RETURNING id, period_start, period_end, file_name, file_path, created_at
	`

	return scanReportArchive(q.QueryRow(ctx, query, a.PeriodStart, a.PeriodEnd, a.FileName, a.FilePath))
}

// List implements archive.ReportArchiveRepository.
func (r *reportArchiveRepositoryImpl) List(ctx context.Context) ([]archive.ReportArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, file_name, file_path, created_at
		FROM tunjangan_archives
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list report archives: %w", err)
	}
	defer rows.Close()

	var archives []archive.ReportArchive
	for rows.Next() {
		var a archive.ReportArchive
		err := rows.Scan(
			&a.ID,
			&a.PeriodStart,
			&a.PeriodEnd,
			&a.FileName,
			&a.FilePath,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report archive: %w", err)
		}
		archives = append(archives, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return archives, nil
}

// GetByID implements archive.ReportArchiveRepository.
func (r *reportArchiveRepositoryImpl) GetByID(ctx context.Context, id string) (archive.ReportArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, file_name, file_path, created_at
		FROM tunjangan_archives
		WHERE id = $1
	`

	return scanReportArchive(q.QueryRow(ctx, query, id))
}

// Delete implements archive.ReportArchiveRepository.
func (r *reportArchiveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tunjangan_archives WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete report archive: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return archive.ErrArchiveNotFound
	}

	return nil
}

func scanReportArchive(row pgx.Row) (archive.ReportArchive, error) {
	var a archive.ReportArchive

	err := row.Scan(
		&a.ID,
		&a.PeriodStart,
		&a.PeriodEnd,
		&a.FileName,
		&a.FilePath,
		&a.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return archive.ReportArchive{}, archive.ErrArchiveNotFound
	}

	if err != nil {
		return archive.ReportArchive{}, fmt.Errorf("failed to scan report archive: %w", err)
	}

	return a, nil
}
