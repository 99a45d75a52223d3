package grade

import "context"

type EmployeeGradeRepository interface {
	Create(ctx context.Context, g EmployeeGrade) (EmployeeGrade, error)
	Upsert(ctx context.Context, g EmployeeGrade) (EmployeeGrade, error)
	GetByID(ctx context.Context, id string) (EmployeeGrade, error)
	List(ctx context.Context) ([]EmployeeGrade, error)
	Update(ctx context.Context, req UpdateEmployeeGradeRequest) error
	Delete(ctx context.Context, id string) error
}
