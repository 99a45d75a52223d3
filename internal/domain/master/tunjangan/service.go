package tunjangan

import (
	"context"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

type BaselineService interface {
	Create(ctx context.Context, req CreateBaselineRequest) (PerformanceBaseline, error)
	List(ctx context.Context) ([]PerformanceBaseline, error)
	Update(ctx context.Context, req UpdateBaselineRequest) error
	Delete(ctx context.Context, id string) error

	// Import upserts rows from an uploaded reference sheet keyed by NIP.
	Import(ctx context.Context, s sheet.Sheet) (ImportSummary, error)
}
