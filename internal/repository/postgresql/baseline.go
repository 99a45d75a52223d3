package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/absensi-adk/backend-go/internal/domain/master/tunjangan"
	"github.com/absensi-adk/backend-go/internal/pkg/database"
)

type baselineRepositoryImpl struct {
	db *database.DB
}

func NewBaselineRepository(db *database.DB) tunjangan.BaselineRepository {
	return &baselineRepositoryImpl{db: db}
}

// Create implements tunjangan.BaselineRepository.
func (r *baselineRepositoryImpl) Create(ctx context.Context, b tunjangan.PerformanceBaseline) (tunjangan.PerformanceBaseline, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_baselines (id, nip, nama, jabatan, unit_kerja, tunjangan_kinerja)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		RETURNING id, nip, nama, jabatan, unit_kerja, tunjangan_kinerja, created_at, updated_at
	`

	var result tunjangan.PerformanceBaseline
	err := q.QueryRow(ctx, query, b.NIP, b.Nama, b.Jabatan, b.UnitKerja, b.TunjanganKinerja).Scan(
		&result.ID,
		&result.NIP,
		&result.Nama,
		&result.Jabatan,
		&result.UnitKerja,
		&result.TunjanganKinerja,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return tunjangan.PerformanceBaseline{}, tunjangan.ErrDuplicateNIP
	}

	if err != nil {
		return tunjangan.PerformanceBaseline{}, fmt.Errorf("failed to create baseline: %w", err)
	}

	return result, nil
}

// Upsert implements tunjangan.BaselineRepository.
func (r *baselineRepositoryImpl) Upsert(ctx context.Context, b tunjangan.PerformanceBaseline) (tunjangan.PerformanceBaseline, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_baselines (id, nip, nama, jabatan, unit_kerja, tunjangan_kinerja)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		ON CONFLICT (nip) DO UPDATE
		SET nama = EXCLUDED.nama,
			jabatan = EXCLUDED.jabatan,
			unit_kerja = EXCLUDED.unit_kerja,
			tunjangan_kinerja = EXCLUDED.tunjangan_kinerja,
			updated_at = now()
		RETURNING id, nip, nama, jabatan, unit_kerja, tunjangan_kinerja, created_at, updated_at
	`

	var result tunjangan.PerformanceBaseline
	err := q.QueryRow(ctx, query, b.NIP, b.Nama, b.Jabatan, b.UnitKerja, b.TunjanganKinerja).Scan(
		&result.ID,
		&result.NIP,
		&result.Nama,
		&result.Jabatan,
		&result.UnitKerja,
		&result.TunjanganKinerja,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return tunjangan.PerformanceBaseline{}, fmt.Errorf("failed to upsert baseline: %w", err)
	}

	return result, nil
}

// GetByID implements tunjangan.BaselineRepository.
func (r *baselineRepositoryImpl) GetByID(ctx context.Context, id string) (tunjangan.PerformanceBaseline, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, nip, nama, jabatan, unit_kerja, tunjangan_kinerja, created_at, updated_at
		FROM performance_baselines
		WHERE id = $1
	`

	var result tunjangan.PerformanceBaseline
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.NIP,
		&result.Nama,
		&result.Jabatan,
		&result.UnitKerja,
		&result.TunjanganKinerja,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return tunjangan.PerformanceBaseline{}, tunjangan.ErrBaselineNotFound
	}

	if err != nil {
		return tunjangan.PerformanceBaseline{}, fmt.Errorf("failed to get baseline: %w", err)
	}

	return result, nil
}

// List implements tunjangan.BaselineRepository.
func (r *baselineRepositoryImpl) List(ctx context.Context) ([]tunjangan.PerformanceBaseline, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, nip, nama, jabatan, unit_kerja, tunjangan_kinerja, created_at, updated_at
		FROM performance_baselines
		ORDER BY nama ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list baselines: %w", err)
	}
	defer rows.Close()

	var baselines []tunjangan.PerformanceBaseline
	for rows.Next() {
		var b tunjangan.PerformanceBaseline
		err := rows.Scan(
			&b.ID,
			&b.NIP,
			&b.Nama,
			&b.Jabatan,
			&b.UnitKerja,
			&b.TunjanganKinerja,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan baseline: %w", err)
		}
		baselines = append(baselines, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return baselines, nil
}

// Update implements tunjangan.BaselineRepository.
func (r *baselineRepositoryImpl) Update(ctx context.Context, req tunjangan.UpdateBaselineRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_baselines
		SET nip = $1, nama = $2, jabatan = $3, unit_kerja = $4, tunjangan_kinerja = $5, updated_at = now()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query, req.NIP, req.Nama, req.Jabatan, req.UnitKerja, req.TunjanganKinerja, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update baseline: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return tunjangan.ErrBaselineNotFound
	}

	return nil
}

// Delete implements tunjangan.BaselineRepository.
func (r *baselineRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM performance_baselines WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete baseline: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return tunjangan.ErrBaselineNotFound
	}

	return nil
}
