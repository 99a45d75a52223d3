package grade

import "errors"

var (
	ErrGradeNotFound = errors.New("employee grade not found")
	ErrDuplicateNIP  = errors.New("an employee grade with this nip already exists")
)
