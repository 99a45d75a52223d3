package grade

import "github.com/absensi-adk/backend-go/internal/pkg/validator"

type CreateEmployeeGradeRequest struct {
	Nama     string `json:"nama" validate:"required,max=150"`
	NIP      string `json:"nip" validate:"required,max=50"`
	Golongan string `json:"golongan" validate:"required,max=10"`
}

func (r *CreateEmployeeGradeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Nama
	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	}
	if len(r.Nama) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama must not exceed 150 characters",
		})
	}

	// NIP
	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip is required",
		})
	}
	if len(r.NIP) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip must not exceed 50 characters",
		})
	}

	// Golongan
	if validator.IsEmpty(r.Golongan) {
		errs = append(errs, validator.ValidationError{
			Field:   "golongan",
			Message: "golongan is required",
		})
	}
	if len(r.Golongan) > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "golongan",
			Message: "golongan must not exceed 10 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeGradeRequest struct {
	ID       string `json:"id" validate:"required"`
	Nama     string `json:"nama" validate:"required,max=150"`
	NIP      string `json:"nip" validate:"required,max=50"`
	Golongan string `json:"golongan" validate:"required,max=10"`
}

func (r *UpdateEmployeeGradeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	}
	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip is required",
		})
	}
	if validator.IsEmpty(r.Golongan) {
		errs = append(errs, validator.ValidationError{
			Field:   "golongan",
			Message: "golongan is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportSummary reports the outcome of a bulk grade upload.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
