package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/pkg/database"
)

type tukinTemplateRepositoryImpl struct {
	db *database.DB
}

func NewTukinTemplateRepository(db *database.DB) archive.TukinTemplateRepository {
	return &tukinTemplateRepositoryImpl{db: db}
}

// FindByPeriod implements archive.TukinTemplateRepository.
func (r *tukinTemplateRepositoryImpl) FindByPeriod(ctx context.Context, employeeType string, month, year int) (archive.TukinTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, file_data, uploaded_at
		FROM adk_tukin_files
		WHERE employee_type = $1 AND period_month = $2 AND period_year = $3
	`

	return scanTukinTemplate(q.QueryRow(ctx, query, employeeType, month, year))
}

// Upsert implements archive.TukinTemplateRepository.
func (r *tukinTemplateRepositoryImpl) Upsert(ctx context.Context, t archive.TukinTemplate) (archive.TukinTemplate, error) {
	q := GetQuerier(ctx, r.db)

	data, err := json.Marshal(t.Rows)
	if err != nil {
		return archive.TukinTemplate{}, fmt.Errorf("failed to encode template rows: %w", err)
	}

	query := `
		INSERT INTO adk_tukin_files (id, employee_type, period_month, period_year, file_name, file_data)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		ON CONFLICT (employee_type, period_month, period_year) DO UPDATE
		SET file_name = EXCLUDED.file_name,
			file_data = EXCLUDED.file_data,
			uploaded_at = now()
		RETURNING id, employee_type, period_month, period_year, file_name, file_data, uploaded_at
	`

	return scanTukinTemplate(q.QueryRow(ctx, query, t.EmployeeType, t.PeriodMonth, t.PeriodYear, t.FileName, data))
}

// List implements archive.TukinTemplateRepository.
func (r *tukinTemplateRepositoryImpl) List(ctx context.Context) ([]archive.TukinTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_type, period_month, period_year, file_name, uploaded_at
		FROM adk_tukin_files
		ORDER BY uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []archive.TukinTemplate
	for rows.Next() {
		var t archive.TukinTemplate
		err := rows.Scan(
			&t.ID,
			&t.EmployeeType,
			&t.PeriodMonth,
			&t.PeriodYear,
			&t.FileName,
			&t.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return templates, nil
}

// Delete implements archive.TukinTemplateRepository.
func (r *tukinTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM adk_tukin_files WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return archive.ErrTemplateNotFound
	}

	return nil
}

func scanTukinTemplate(row pgx.Row) (archive.TukinTemplate, error) {
	var t archive.TukinTemplate
	var data []byte

	err := row.Scan(
		&t.ID,
		&t.EmployeeType,
		&t.PeriodMonth,
		&t.PeriodYear,
		&t.FileName,
		&data,
		&t.UploadedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return archive.TukinTemplate{}, archive.ErrTemplateNotFound
	}

	if err != nil {
		return archive.TukinTemplate{}, fmt.Errorf("failed to scan template: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &t.Rows); err != nil {
			return archive.TukinTemplate{}, fmt.Errorf("failed to decode template rows: %w", err)
		}
	}

	return t, nil
}
