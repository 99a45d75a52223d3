package archive

import "context"

// Download is a file handed back to the client.
type Download struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Service lists, downloads and deletes archived payroll files across the
// three archive kinds.
type Service interface {
	ListExtracts(ctx context.Context) ([]ExtractArchive, error)
	DownloadExtract(ctx context.Context, id string) (Download, error)
	DeleteExtract(ctx context.Context, id string) error

	ListReports(ctx context.Context) ([]ReportArchive, error)
	DownloadReport(ctx context.Context, id string) (Download, error)
	DeleteReport(ctx context.Context, id string) error

	ListTukin(ctx context.Context) ([]TukinArchive, error)
	DownloadTukin(ctx context.Context, id string) (Download, error)
	DeleteTukin(ctx context.Context, id string) error
}
