package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/pkg/database"
)

type tukinArchiveRepositoryImpl struct {
	db *database.DB
}

func NewTukinArchiveRepository(db *database.DB) archive.TukinArchiveRepository {
	return &tukinArchiveRepositoryImpl{db: db}
}

// FindByPeriod implements archive.TukinArchiveRepository.
func (r *tukinArchiveRepositoryImpl) FindByPeriod(ctx context.Context, employeeType string, month, year int) (archive.TukinArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, file_path, created_at
		FROM adk_tukin_archives
		WHERE employee_type = $1 AND period_month = $2 AND period_year = $3
	`

	return scanTukinArchive(q.QueryRow(ctx, query, employeeType, month, year))
}

// Insert implements archive.TukinArchiveRepository.
func (r *tukinArchiveRepositoryImpl) Insert(ctx context.Context, a archive.TukinArchive) (archive.TukinArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adk_tukin_archives (id, employee_type, period_month, period_year, file_name, file_path)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		ON CONFLICT (employee_type, period_month, period_year) DO UPDATE
		SET file_name = EXCLUDED.file_name,
			file_path = EXCLUDED.file_path,
			created_at = now()
		RETURNING id, employee_type, period_month, period_year, file_name, file_path, created_at
	`

	return scanTukinArchive(q.QueryRow(ctx, query, a.EmployeeType, a.PeriodMonth, a.PeriodYear, a.FileName, a.FilePath))
}

// List implements archive.TukinArchiveRepository.
func (r *tukinArchiveRepositoryImpl) List(ctx context.Context) ([]archive.TukinArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, file_path, created_at
		FROM adk_tukin_archives
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tukin archives: %w", err)
	}
	defer rows.Close()

	var archives []archive.TukinArchive
	for rows.Next() {
		var a archive.TukinArchive
		err := rows.Scan(
			&a.ID,
			&a.EmployeeType,
			&a.PeriodMonth,
			&a.PeriodYear,
			&a.FileName,
			&a.FilePath,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tukin archive: %w", err)
		}
		archives = append(archives, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return archives, nil
}

// GetByID implements archive.TukinArchiveRepository.
func (r *tukinArchiveRepositoryImpl) GetByID(ctx context.Context, id string) (archive.TukinArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, file_path, created_at
		FROM adk_tukin_archives
		WHERE id = $1
	`

	return scanTukinArchive(q.QueryRow(ctx, query, id))
}

// Delete implements archive.TukinArchiveRepository.
func (r *tukinArchiveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM adk_tukin_archives WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tukin archive: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return archive.ErrArchiveNotFound
	}

	return nil
}

func scanTukinArchive(row pgx.Row) (archive.TukinArchive, error) {
	var a archive.TukinArchive

	err := row.Scan(
		&a.ID,
		&a.EmployeeType,
		&a.PeriodMonth,
		&a.PeriodYear,
		&a.FileName,
		&a.FilePath,
		&a.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return archive.TukinArchive{}, archive.ErrArchiveNotFound
	}

	if err != nil {
		return archive.TukinArchive{}, fmt.Errorf("failed to scan tukin archive: %w", err)
	}

	return a, nil
}
