package response

import (
	"errors"
	"net/http"

	"github.com/absensi-adk/backend-go/internal/domain/adktukin"
	"github.com/absensi-adk/backend-go/internal/domain/allowance"
	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/domain/attendance"
	"github.com/absensi-adk/backend-go/internal/domain/extract"
	"github.com/absensi-adk/backend-go/internal/domain/master/grade"
	"github.com/absensi-adk/backend-go/internal/domain/master/tunjangan"
	"github.com/absensi-adk/backend-go/internal/domain/performance"
	"github.com/absensi-adk/backend-go/internal/domain/sheet"
	"github.com/absensi-adk/backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed uploads carry the offending header values back to the caller
	var headerErr *sheet.InvalidHeaderError
	if errors.As(err, &headerErr) {
		BadRequest(w, "First two columns must be 'NAMA' and 'NIP'", map[string]string{
			"column_1": headerErr.Col0,
			"column_2": headerErr.Col1,
		})
		return
	}

	switch {
	// Upload format errors
	case errors.Is(err, sheet.ErrEmptySheet),
		errors.Is(err, adktukin.ErrUnknownTemplateType),
		errors.Is(err, sheet.ErrNoWorksheet),
		errors.Is(err, attendance.ErrMissingCheckinColumns),
		errors.Is(err, adktukin.ErrMissingNIPColumn),
		errors.Is(err, adktukin.ErrEmptyTemplate),
		errors.Is(err, adktukin.ErrRowTooShort),
		errors.Is(err, adktukin.ErrNoConfirmationData),
		errors.Is(err, allowance.ErrNoResults),
		errors.Is(err, extract.ErrUnknownEmployeeType),
		errors.Is(err, performance.ErrNoLines):
		BadRequest(w, err.Error(), nil)

	// Archive domain errors
	case errors.Is(err, archive.ErrDuplicatePeriod):
		Conflict(w, "An archive for this period already exists")
	case errors.Is(err, archive.ErrArchiveNotFound):
		NotFound(w, "Archive not found")
	case errors.Is(err, archive.ErrTemplateNotFound),
		errors.Is(err, adktukin.ErrTemplateNotFound):
		NotFound(w, "No template stored for this employee type and period")

	// Reference data errors
	case errors.Is(err, grade.ErrGradeNotFound):
		NotFound(w, "Employee grade not found")
	case errors.Is(err, grade.ErrDuplicateNIP):
		Conflict(w, "An employee grade with this NIP already exists")
	case errors.Is(err, tunjangan.ErrBaselineNotFound):
		NotFound(w, "Performance baseline not found")
	case errors.Is(err, tunjangan.ErrDuplicateNIP):
		Conflict(w, "A baseline with this NIP already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
