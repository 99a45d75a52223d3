package tunjangan

import "context"

type BaselineRepository interface {
	Create(ctx context.Context, b PerformanceBaseline) (PerformanceBaseline, error)
	Upsert(ctx context.Context, b PerformanceBaseline) (PerformanceBaseline, error)
	GetByID(ctx context.Context, id string) (PerformanceBaseline, error)
	List(ctx context.Context) ([]PerformanceBaseline, error)
	Update(ctx context.Context, req UpdateBaselineRequest) error
	Delete(ctx context.Context, id string) error
}
