package rsvp_api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/logger"
	"ms-rsvp/internal/rsvp/service"
	"ms-rsvp/internal/utils"
)

// maxBodyBytes caps the public submission body.
const maxBodyBytes = 64 << 10

type Handler struct {
	Service  *service.RsvpService
	Messages locale.Messages
	Logger   *logger.Logger
}

func NewHandler(svc *service.RsvpService, msgs locale.Messages, log *logger.Logger) *Handler {
	return &Handler{Service: svc, Messages: msgs, Logger: log}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.OKResponse{OK: true})
}

// Submit handles POST /api/rsvp with body {"full_name": string, "attending": bool}.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&payload); err != nil || payload == nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fullName, attending, err := parseSubmission(payload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if _, err := h.Service.Submit(r.Context(), fullName, attending); err != nil {
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse(h.Messages.SubmitThanks))
}

// parseSubmission checks JSON types. attending must be present and a real
// boolean; the name is only type-checked here and normalized by the service.
func parseSubmission(payload map[string]interface{}) (string, bool, error) {
	rawAttending, ok := payload["attending"]
	if !ok {
		return "", false, &service.ValidationError{Detail: "attending is required"}
	}
	attending, ok := rawAttending.(bool)
	if !ok {
		return "", false, &service.ValidationError{Detail: "attending must be boolean"}
	}

	var fullName string
	switch v := payload["full_name"].(type) {
	case nil:
	case string:
		fullName = v
	default:
		return "", false, &service.ValidationError{Detail: "full_name must be a string"}
	}
	return fullName, attending, nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if v, ok := service.IsValidation(err); ok {
		utils.WriteError(w, http.StatusBadRequest, v.Detail)
		return
	}
	h.Logger.Error("RSVP", fmt.Sprintf("Submit: %v", err))
	utils.WriteError(w, http.StatusInternalServerError, "could not save response")
}
