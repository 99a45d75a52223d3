package tunjangan

import (
	"github.com/shopspring/decimal"

	"github.com/absensi-adk/backend-go/internal/pkg/validator"
)

type CreateBaselineRequest struct {
	NIP              string          `json:"nip" validate:"required,max=50"`
	Nama             string          `json:"nama" validate:"required,max=150"`
	Jabatan          string          `json:"jabatan" validate:"max=150"`
	UnitKerja        string          `json:"unit_kerja" validate:"max=150"`
	TunjanganKinerja decimal.Decimal `json:"tunjangan_kinerja"`
}

func (r *CreateBaselineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip is required",
		})
	}
	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	}
	if r.TunjanganKinerja.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "tunjangan_kinerja",
			Message: "tunjangan_kinerja must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBaselineRequest struct {
	ID               string          `json:"id" validate:"required"`
	NIP              string          `json:"nip" validate:"required,max=50"`
	Nama             string          `json:"nama" validate:"required,max=150"`
	Jabatan          string          `json:"jabatan" validate:"max=150"`
	UnitKerja        string          `json:"unit_kerja" validate:"max=150"`
	TunjanganKinerja decimal.Decimal `json:"tunjangan_kinerja"`
}

func (r *UpdateBaselineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip is required",
		})
	}
	if validator.IsEmpty(r.Nama) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	}
	if r.TunjanganKinerja.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "tunjangan_kinerja",
			Message: "tunjangan_kinerja must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportSummary reports the outcome of a bulk baseline upload.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
