package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/absensi-adk/backend-go/internal/domain/allowance"
	"github.com/absensi-adk/backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AllowanceHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	GenerateExtract(w http.ResponseWriter, r *http.Request)
}

type allowanceHandlerImpl struct {
	allowanceService allowance.Service
}

func NewAllowanceHandler(allowanceService allowance.Service) AllowanceHandler {
	return &allowanceHandlerImpl{allowanceService: allowanceService}
}

// Calculate accepts a WFO roster workbook and returns the priced results.
func (h *allowanceHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	roster, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.allowanceService.Calculate(r.Context(), roster)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Report accepts a WFO roster workbook and streams back the rendered
// uang makan spreadsheet.
func (h *allowanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	roster, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	calc, err := h.allowanceService.Calculate(r.Context(), roster)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.allowanceService.Report(r.Context(), calc.Results)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	fileName := fmt.Sprintf("uang_makan_report_%s.xlsx", time.Now().Format("20060102"))
	response.File(w, fileName, xlsxContentType, data)
}

// GenerateExtract accepts a WFO roster workbook plus cohort and period
// form fields and returns the archived payment-system extract.
func (h *allowanceHandlerImpl) GenerateExtract(w http.ResponseWriter, r *http.Request) {
	roster, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	req := allowance.ExtractRequest{
		EmployeeType: r.FormValue("employee_type"),
		Month:        formInt(r, "month"),
		Year:         formInt(r, "year"),
	}

	calc, err := h.allowanceService.Calculate(r.Context(), roster)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.allowanceService.GenerateExtract(r.Context(), roster, calc.Results, req, boolQuery(r, "replace"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extract generated successfully", result)
}
