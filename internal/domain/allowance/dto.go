package allowance

import (
	"github.com/absensi-adk/backend-go/internal/pkg/validator"
)

// PeriodRequest names the payroll month a calculation or extract belongs to.
type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r PeriodRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExtractRequest asks for a payment-system extract for one cohort and
// period.
type ExtractRequest struct {
	EmployeeType string `json:"employee_type"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

func (r ExtractRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeType) {
		errs = append(errs, validator.ValidationError{Field: "employee_type", Message: "employee_type is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalculateResponse is the calculation endpoint payload.
type CalculateResponse struct {
	Results []CalculationResult `json:"results"`
	Skipped []string            `json:"skipped,omitempty"`
	Summary Summary             `json:"summary"`
}

// ExtractResponse carries the generated payment-system extract.
type ExtractResponse struct {
	EmployeeType string `json:"employee_type"`
	Period       string `json:"period"`
	FileName     string `json:"file_name"`
	Lines        int    `json:"lines"`
	Content      string `json:"content"`
	ArchiveID    string `json:"archive_id,omitempty"`
}
