package admin_api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ms-rsvp/internal/admin/templates"
	"ms-rsvp/internal/export"
	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/logger"
	"ms-rsvp/internal/qr"
	"ms-rsvp/internal/rsvp/service"
)

const listPath = "/admin"

type Handler struct {
	Service     *service.RsvpService
	Renderer    *templates.Renderer
	Messages    locale.Messages
	QRGenerator *qr.QRGenerator
	Logger      *logger.Logger
}

func NewHandler(svc *service.RsvpService, msgs locale.Messages, qrGen *qr.QRGenerator, log *logger.Logger) *Handler {
	return &Handler{
		Service:     svc,
		Renderer:    templates.NewRenderer(msgs),
		Messages:    msgs,
		QRGenerator: qrGen,
		Logger:      log,
	}
}

func (h *Handler) ListResponses(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListResponses(r.Context())
	if err != nil {
		h.internalError(w, "ListResponses", err)
		return
	}

	page := templates.ListPage{Lang: h.Messages.Lang, Rows: rows, Total: len(rows)}
	for _, row := range rows {
		if row.Attending {
			page.Attending++
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.RenderList(w, page); err != nil {
		h.internalError(w, "ListResponses", err)
	}
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := responseID(w, r)
	if !ok {
		return
	}

	response, err := h.Service.GetResponse(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "EditForm", err)
		return
	}

	page := templates.EditPage{Lang: h.Messages.Lang, Response: response}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.RenderEdit(w, page); err != nil {
		h.internalError(w, "EditForm", err)
	}
}

func (h *Handler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := responseID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	err := h.Service.UpdateResponse(r.Context(), id, r.PostForm.Get("full_name"), r.PostForm.Get("attending"))
	if v, ok := service.IsValidation(err); ok {
		http.Error(w, v.Detail, http.StatusBadRequest)
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "SaveEdit", err)
		return
	}

	http.Redirect(w, r, listPath, http.StatusSeeOther)
}

func (h *Handler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	id, ok := responseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteResponse(r.Context(), id); err != nil {
		h.internalError(w, "DeleteResponse", err)
		return
	}

	http.Redirect(w, r, listPath, http.StatusSeeOther)
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListResponses(r.Context())
	if err != nil {
		h.internalError(w, "ExportXLSX", err)
		return
	}

	data, err := export.BuildWorkbook(rows, h.Messages)
	if err != nil {
		h.internalError(w, "ExportXLSX", err)
		return
	}
	h.Logger.Info("EXPORT", fmt.Sprintf("ExportXLSX: %d rows, %d bytes", len(rows), len(data)))

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Warn("EXPORT", fmt.Sprintf("ExportXLSX: write failed: %v", err))
	}
}

func (h *Handler) InvitationQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.QRGenerator.PNG()
	if err != nil {
		h.internalError(w, "InvitationQR", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.Logger.Warn("ADMIN", fmt.Sprintf("InvitationQR: write failed: %v", err))
	}
}

// responseID parses {id}. Anything that is not an integer cannot name a stored
// response, so it is answered with 404.
func responseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) internalError(w http.ResponseWriter, op string, err error) {
	h.Logger.Error("ADMIN", fmt.Sprintf("%s: %v", op, err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
