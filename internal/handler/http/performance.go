package http

import (
	"net/http"

	"github.com/absensi-adk/backend-go/internal/domain/performance"
	"github.com/absensi-adk/backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.Service
}

func NewPerformanceHandler(performanceService performance.Service) PerformanceHandler {
	return &performanceHandlerImpl{performanceService: performanceService}
}

// Calculate accepts a check-in log workbook and returns per-employee
// deduction lines.
func (h *performanceHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	checkins, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.performanceService.Calculate(r.Context(), checkins)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Report accepts a check-in log workbook plus period form fields, archives
// the rendered tunjangan kinerja report and streams it back.
func (h *performanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	checkins, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	req := performance.ReportRequest{
		Month: formInt(r, "month"),
		Year:  formInt(r, "year"),
	}

	calc, err := h.performanceService.Calculate(r.Context(), checkins)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, fileName, err := h.performanceService.Report(r.Context(), calc.Lines, req, boolQuery(r, "replace"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, fileName, xlsxContentType, data)
}
