package archive

import "context"

type ExtractArchiveRepository interface {
	FindByPeriod(ctx context.Context, employeeType string, month, year int) (ExtractArchive, error)
	Insert(ctx context.Context, a ExtractArchive) (ExtractArchive, error)
	List(ctx context.Context) ([]ExtractArchive, error)
	GetByID(ctx context.Context, id string) (ExtractArchive, error)
	Delete(ctx context.Context, id string) error
}

type ReportArchiveRepository interface {
	FindByPeriod(ctx context.Context, start, end string) (ReportArchive, error)
	Insert(ctx context.Context, a ReportArchive) (ReportArchive, error)
	List(ctx context.Context) ([]ReportArchive, error)
	GetByID(ctx context.Context, id string) (ReportArchive, error)
	Delete(ctx context.Context, id string) error
}

type TukinArchiveRepository interface {
	FindByPeriod(ctx context.Context, employeeType string, month, year int) (TukinArchive, error)
	Insert(ctx context.Context, a TukinArchive) (TukinArchive, error)
	List(ctx context.Context) ([]TukinArchive, error)
	GetByID(ctx context.Context, id string) (TukinArchive, error)
	Delete(ctx context.Context, id string) error
}

type TukinTemplateRepository interface {
	FindByPeriod(ctx context.Context, employeeType string, month, year int) (TukinTemplate, error)
	Upsert(ctx context.Context, t TukinTemplate) (TukinTemplate, error)
	List(ctx context.Context) ([]TukinTemplate, error)
	Delete(ctx context.Context, id string) error
}
