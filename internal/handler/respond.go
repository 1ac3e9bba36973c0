package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/krotrn/MERN-Project/internal/service"
)

// envelope estándar del API: {status, message?, data?, ...}
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Status: "success", Message: message, Data: data})
}

func respondFail(w http.ResponseWriter, status int, message string) {
	st := "fail"
	if status >= 500 {
		st = "error"
	}
	writeJSON(w, status, envelope{Status: st, Message: message})
}

// respondError mapea la taxonomía de errores del servicio a códigos
// HTTP. Todo lo que no matchee es un 500 con mensaje genérico: el
// detalle interno va al log, nunca al cliente.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBadInput):
		respondFail(w, http.StatusBadRequest, userMessage(err, service.ErrBadInput))
	case errors.Is(err, service.ErrValidation):
		respondFail(w, http.StatusUnprocessableEntity, userMessage(err, service.ErrValidation))
	case errors.Is(err, service.ErrGenreInUse):
		respondFail(w, http.StatusConflict, userMessage(err, service.ErrGenreInUse))
	case errors.Is(err, service.ErrDuplicate):
		respondFail(w, http.StatusConflict, userMessage(err, service.ErrDuplicate))
	case errors.Is(err, service.ErrNotFound):
		respondFail(w, http.StatusNotFound, userMessage(err, service.ErrNotFound))
	case errors.Is(err, service.ErrUnauthenticated):
		respondFail(w, http.StatusUnauthorized, userMessage(err, service.ErrUnauthenticated))
	case errors.Is(err, service.ErrForbidden):
		respondFail(w, http.StatusForbidden, userMessage(err, service.ErrForbidden))
	default:
		log.Printf("[http] error interno: %v", err)
		respondFail(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

// userMessage saca el detalle legible que viene después del sentinel
// ("validation failed: xxx" -> "xxx").
func userMessage(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
