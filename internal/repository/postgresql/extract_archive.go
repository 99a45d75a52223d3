package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/pkg/database"
)

type extractArchiveRepositoryImpl struct {
	db *database.DB
}

func NewExtractArchiveRepository(db *database.DB) archive.ExtractArchiveRepository {
	return &extractArchiveRepositoryImpl{db: db}
}

// FindByPeriod implements archive.ExtractArchiveRepository.
func (r *extractArchiveRepositoryImpl) FindByPeriod(ctx context.Context, employeeType string, month, year int) (archive.ExtractArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, file_content, calculation_results, created_at
		FROM adk_archives
		WHERE employee_type = $1 AND period_month = $2 AND period_year = $3
	`

	return r.scanOne(q.QueryRow(ctx, query, employeeType, month, year))
}

// Insert implements archive.ExtractArchiveRepository.
func (r *extractArchiveRepositoryImpl) Insert(ctx context.Context, a archive.ExtractArchive) (archive.ExtractArchive, error) {
	q := GetQuerier(ctx, r.db)

	results, err := json.Marshal(a.Results)
	if err != nil {
		return archive.ExtractArchive{}, fmt.Errorf("failed to encode calculation results: %w", err)
	}

	query := `
		INSERT INTO adk_archives (id, employee_type, period_month, period_year, file_name, file_content, calculation_results)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_type, period_month, period_year) DO UPDATE
		SET file_name = EXCLUDED.file_name,
			file_content = EXCLUDED.file_content,
			calculation_results = EXCLUDED.calculation_results,
			created_at = now()
		RETURNING id, employee_type, period_month, period_year, file_name, file_content, calculation_results, created_at
	`

	return r.scanOne(q.QueryRow(ctx, query, a.EmployeeType, a.PeriodMonth, a.PeriodYear, a.FileName, a.Content, results))
}

// List implements archive.ExtractArchiveRepository.
func (r *extractArchiveRepositoryImpl) List(ctx context.Context) ([]archive.ExtractArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, created_at
		FROM adk_archives
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list extract archives: %w", err)
	}
	defer rows.Close()

	var archives []archive.ExtractArchive
	for rows.Next() {
		var a archive.ExtractArchive
		err := rows.Scan(
			&a.ID,
			&a.EmployeeType,
			&a.PeriodMonth,
			&a.PeriodYear,
			&a.FileName,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extract archive: %w", err)
		}
		archives = append(archives, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return archives, nil
}

// GetByID implements archive.ExtractArchiveRepository.
func (r *extractArchiveRepositoryImpl) GetByID(ctx context.Context, id string) (archive.ExtractArchive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, file_content, calculation_results, created_at
		FROM adk_archives
		WHERE id = $1
	`

	return r.scanOne(q.QueryRow(ctx, query, id))
}

// Delete implements archive.ExtractArchiveRepository.
func (r *extractArchiveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM adk_archives WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete extract archive: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return archive.ErrArchiveNotFound
	}

	return nil
}

func (r *extractArchiveRepositoryImpl) scanOne(row pgx.Row) (archive.ExtractArchive, error) {
	var a archive.ExtractArchive
	var results []byte

	err := row.Scan(
		&a.ID,
		&a.EmployeeType,
		&a.PeriodMonth,
		&a.PeriodYear,
		&a.FileName,
		&a.Content,
		&results,
		&a.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return archive.ExtractArchive{}, archive.ErrArchiveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return archive.ExtractArchive{}, archive.ErrDuplicatePeriod
	}

	if err != nil {
		return archive.ExtractArchive{}, fmt.Errorf("failed to scan extract archive: %w", err)
	}

	if len(results) > 0 {
		if err := json.Unmarshal(results, &a.Results); err != nil {
			return archive.ExtractArchive{}, fmt.Errorf("failed to decode calculation results: %w", err)
		}
	}

	return a, nil
}
