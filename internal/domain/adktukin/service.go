package adktukin

import (
	"context"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

// Service stores treasury templates and generates reconciled ADK Tukin
// files from them.
type Service interface {
	// StoreTemplate keeps an uploaded treasury template for later
	// generation. A slot that already holds a template for the same
	// variant and period is rejected unless replace is set.
	StoreTemplate(ctx context.Context, employeeType string, month, year int, fileName string, s sheet.Sheet, replace bool) (archive.TukinTemplate, error)

	// ListTemplates returns the stored templates, newest first.
	ListTemplates(ctx context.Context) ([]archive.TukinTemplate, error)

	// Generate reconciles the stored template for the request's variant
	// and period against the uploaded post-confirmation sheet, returns
	// the rendered spreadsheet and archives it. An already-archived
	// period is rejected unless replace is set.
	Generate(ctx context.Context, req GenerateRequest, confirmations sheet.Sheet, replace bool) ([]byte, *GenerateResponse, error)
}
