package utils

import (
	"encoding/json"
	"net/http"
)

type OKResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse uses "detail" so the public form can show the message as is.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func SuccessResponse(message string) OKResponse {
	return OKResponse{OK: true, Message: message}
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, detail string) error {
	return WriteJSON(w, status, ErrorResponse{Detail: detail})
}
