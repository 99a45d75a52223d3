package adktukin

import (
	"fmt"
	"strings"

	"github.com/absensi-adk/backend-go/internal/pkg/validator"
)

// TemplateTypes are the treasury template variants, one per disbursement
// channel.
var TemplateTypes = []string{"CPNS Mandiri", "CPNS BSI", "CPNS BNI", "PNS", "PPPK"}

// ValidTemplateType reports whether t names a known template variant.
func ValidTemplateType(t string) bool {
	for _, v := range TemplateTypes {
		if strings.EqualFold(t, v) {
			return true
		}
	}
	return false
}

// GenerateRequest asks for an ADK Tukin file for one template variant
// and period.
type GenerateRequest struct {
	EmployeeType string `json:"employee_type"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

func (r GenerateRequest) Validate() error {
	var errs validator.ValidationErrors
	if !ValidTemplateType(r.EmployeeType) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_type",
			Message: fmt.Sprintf("employee_type must be one of: %s", strings.Join(TemplateTypes, ", ")),
		})
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

// FileName builds the download name for a generated ADK Tukin file,
// e.g. ADK-TUKIN-CPNS-MANDIRI-202507.xlsx.
func FileName(employeeType string, year, month int) string {
	slug := strings.ToUpper(strings.Join(strings.Fields(employeeType), "-"))
	return fmt.Sprintf("ADK-TUKIN-%s-%d%02d.xlsx", slug, year, month)
}

// GenerateResponse describes the generated and archived file.
type GenerateResponse struct {
	FileName    string `json:"file_name"`
	MatchedRows int    `json:"matched_rows"`
	TotalRows   int    `json:"total_rows"`
	ArchiveID   string `json:"archive_id,omitempty"`
}
