package grade

import (
	"context"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

type EmployeeGradeService interface {
	Create(ctx context.Context, req CreateEmployeeGradeRequest) (EmployeeGrade, error)
	List(ctx context.Context) ([]EmployeeGrade, error)
	Update(ctx context.Context, req UpdateEmployeeGradeRequest) error
	Delete(ctx context.Context, id string) error

	// Import upserts rows from an uploaded reference sheet keyed by NIP.
	Import(ctx context.Context, s sheet.Sheet) (ImportSummary, error)
}
