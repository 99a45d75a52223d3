package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/absensi-adk/backend-go/internal/domain/master/grade"
	"github.com/absensi-adk/backend-go/internal/domain/master/tunjangan"
	"github.com/absensi-adk/backend-go/internal/handler/http/response"
)

type EmployeeGradeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type employeeGradeHandlerImpl struct {
	gradeService grade.EmployeeGradeService
}

func NewEmployeeGradeHandler(gradeService grade.EmployeeGradeService) EmployeeGradeHandler {
	return &employeeGradeHandlerImpl{gradeService: gradeService}
}

func (h *employeeGradeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req grade.CreateEmployeeGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.gradeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee grade created successfully", result)
}

func (h *employeeGradeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	grades, err := h.gradeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grades)
}

func (h *employeeGradeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req grade.UpdateEmployeeGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.gradeService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee grade updated successfully", nil)
}

func (h *employeeGradeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.gradeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee grade deleted successfully", nil)
}

// Import accepts a grade reference workbook and upserts its rows by NIP.
func (h *employeeGradeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	s, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.gradeService.Import(r.Context(), s)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee grades imported successfully", summary)
}

type BaselineHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type baselineHandlerImpl struct {
	baselineService tunjangan.BaselineService
}

func NewBaselineHandler(baselineService tunjangan.BaselineService) BaselineHandler {
	return &baselineHandlerImpl{baselineService: baselineService}
}

func (h *baselineHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req tunjangan.CreateBaselineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.baselineService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Baseline created successfully", result)
}

func (h *baselineHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	baselines, err := h.baselineService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, baselines)
}

func (h *baselineHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req tunjangan.UpdateBaselineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.baselineService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Baseline updated successfully", nil)
}

func (h *baselineHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.baselineService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Baseline deleted successfully", nil)
}

// Import accepts a baseline reference workbook and upserts its rows by NIP.
func (h *baselineHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	s, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.baselineService.Import(r.Context(), s)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Baselines imported successfully", summary)
}
