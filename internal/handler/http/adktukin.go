package http

import (
	"net/http"

	"github.com/absensi-adk/backend-go/internal/domain/adktukin"
	"github.com/absensi-adk/backend-go/internal/handler/http/response"
)

type ADKTukinHandler interface {
	UploadTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
}

type adkTukinHandlerImpl struct {
	adkTukinService adktukin.Service
}

func NewADKTukinHandler(adkTukinService adktukin.Service) ADKTukinHandler {
	return &adkTukinHandlerImpl{adkTukinService: adkTukinService}
}

// UploadTemplate stores a treasury template workbook for one variant and
// period, replacing any template already stored for that slot.
func (h *adkTukinHandlerImpl) UploadTemplate(w http.ResponseWriter, r *http.Request) {
	s, fileName, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	employeeType := r.FormValue("employee_type")
	month := formInt(r, "month")
	year := formInt(r, "year")

	tmpl, err := h.adkTukinService.StoreTemplate(r.Context(), employeeType, month, year, fileName, s, boolQuery(r, "replace"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template uploaded successfully", tmpl)
}

func (h *adkTukinHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.adkTukinService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// Generate accepts a post-confirmation workbook plus variant and period
// form fields, reconciles it against the stored template and streams back
// the generated ADK Tukin file.
func (h *adkTukinHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	confirmations, _, err := readUploadedSheet(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	req := adktukin.GenerateRequest{
		EmployeeType: r.FormValue("employee_type"),
		Month:        formInt(r, "month"),
		Year:         formInt(r, "year"),
	}

	data, result, err := h.adkTukinService.Generate(r.Context(), req, confirmations, boolQuery(r, "replace"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, result.FileName, xlsxContentType, data)
}
