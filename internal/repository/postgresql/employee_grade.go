package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/absensi-adk/backend-go/internal/domain/master/grade"
	"github.com/absensi-adk/backend-go/internal/pkg/database"
)

type employeeGradeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeGradeRepository(db *database.DB) grade.EmployeeGradeRepository {
	return &employeeGradeRepositoryImpl{db: db}
}

// Create implements grade.EmployeeGradeRepository.
func (r *employeeGradeRepositoryImpl) Create(ctx context.Context, g grade.EmployeeGrade) (grade.EmployeeGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_grades (id, nama, nip, golongan)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, nama, nip, golongan, created_at, updated_at
	`

	var result grade.EmployeeGrade
	err := q.QueryRow(ctx, query, g.Nama, g.NIP, g.Golongan).Scan(
		&result.ID,
		&result.Nama,
		&result.NIP,
		&result.Golongan,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return grade.EmployeeGrade{}, grade.ErrDuplicateNIP
	}

	if err != nil {
		return grade.EmployeeGrade{}, fmt.Errorf("failed to create employee grade: %w", err)
	}

	return result, nil
}

// Upsert implements grade.EmployeeGradeRepository.
func (r *employeeGradeRepositoryImpl) Upsert(ctx context.Context, g grade.EmployeeGrade) (grade.EmployeeGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_grades (id, nama, nip, golongan)
		VALUES (uuidv7(), $1, $2, $3)
		ON CONFLICT (nip) DO UPDATE
		SET nama = EXCLUDED.nama, golongan = EXCLUDED.golongan, updated_at = now()
		RETURNING id, nama, nip, golongan, created_at, updated_at
	`

	var result grade.EmployeeGrade
	err := q.QueryRow(ctx, query, g.Nama, g.NIP, g.Golongan).Scan(
		&result.ID,
		&result.Nama,
		&result.NIP,
		&result.Golongan,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return grade.EmployeeGrade{}, fmt.Errorf("failed to upsert employee grade: %w", err)
	}

	return result, nil
}

// GetByID implements grade.EmployeeGradeRepository.
func (r *employeeGradeRepositoryImpl) GetByID(ctx context.Context, id string) (grade.EmployeeGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, nama, nip, golongan, created_at, updated_at
		FROM employee_grades
		WHERE id = $1
	`

	var result grade.EmployeeGrade
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Nama,
		&result.NIP,
		&result.Golongan,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return grade.EmployeeGrade{}, grade.ErrGradeNotFound
	}

	if err != nil {
		return grade.EmployeeGrade{}, fmt.Errorf("failed to get employee grade: %w", err)
	}

	return result, nil
}

// List implements grade.EmployeeGradeRepository.
func (r *employeeGradeRepositoryImpl) List(ctx context.Context) ([]grade.EmployeeGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, nama, nip, golongan, created_at, updated_at
		FROM employee_grades
		ORDER BY nama ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee grades: %w", err)
	}
	defer rows.Close()

	var grades []grade.EmployeeGrade
	for rows.Next() {
		var g grade.EmployeeGrade
		err := rows.Scan(
			&g.ID,
			&g.Nama,
			&g.NIP,
			&g.Golongan,
			&g.CreatedAt,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee grade: %w", err)
		}
		grades = append(grades, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grades, nil
}

// Update implements grade.EmployeeGradeRepository.
func (r *employeeGradeRepositoryImpl) Update(ctx context.Context, req grade.UpdateEmployeeGradeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_grades
		SET nama = $1, nip = $2, golongan = $3, updated_at = now()
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.Nama, req.NIP, req.Golongan, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update employee grade: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return grade.ErrGradeNotFound
	}

	return nil
}

// Delete implements grade.EmployeeGradeRepository.
func (r *employeeGradeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employee_grades WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee grade: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return grade.ErrGradeNotFound
	}

	return nil
}
