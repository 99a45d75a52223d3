package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/absensi-adk/backend-go/internal/domain/archive"
	"github.com/absensi-adk/backend-go/internal/handler/http/response"
)

type ArchiveHandler interface {
	ListExtracts(w http.ResponseWriter, r *http.Request)
	DownloadExtract(w http.ResponseWriter, r *http.Request)
	DeleteExtract(w http.ResponseWriter, r *http.Request)

	ListReports(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
	DeleteReport(w http.ResponseWriter, r *http.Request)

	ListTukin(w http.ResponseWriter, r *http.Request)
	DownloadTukin(w http.ResponseWriter, r *http.Request)
	DeleteTukin(w http.ResponseWriter, r *http.Request)
}

type archiveHandlerImpl struct {
	archiveService archive.Service
}

func NewArchiveHandler(archiveService archive.Service) ArchiveHandler {
	return &archiveHandlerImpl{archiveService: archiveService}
}

func (h *archiveHandlerImpl) ListExtracts(w http.ResponseWriter, r *http.Request) {
	archives, err := h.archiveService.ListExtracts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, archives)
}

func (h *archiveHandlerImpl) DownloadExtract(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dl, err := h.archiveService.DownloadExtract(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, dl.FileName, dl.ContentType, dl.Data)
}

func (h *archiveHandlerImpl) DeleteExtract(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.archiveService.DeleteExtract(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Archive deleted successfully", nil)
}

func (h *archiveHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	archives, err := h.archiveService.ListReports(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, archives)
}

func (h *archiveHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dl, err := h.archiveService.DownloadReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, dl.FileName, dl.ContentType, dl.Data)
}

func (h *archiveHandlerImpl) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.archiveService.DeleteReport(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Archive deleted successfully", nil)
}

func (h *archiveHandlerImpl) ListTukin(w http.ResponseWriter, r *http.Request) {
	archives, err := h.archiveService.ListTukin(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, archives)
}

func (h *archiveHandlerImpl) DownloadTukin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dl, err := h.archiveService.DownloadTukin(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, dl.FileName, dl.ContentType, dl.Data)
}

func (h *archiveHandlerImpl) DeleteTukin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.archiveService.DeleteTukin(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Archive deleted successfully", nil)
}
