package web

// envelope.go implements the uniform response envelope: success is
// {"ok":true,"data":...}, failure is {"ok":false,"error":"..."}. Clients
// only ever see the error message text; the typed core errors merely pick
// the HTTP status.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asredigitalgroup-rgb/disti-board/internal/core"
	"github.com/asredigitalgroup-rgb/disti-board/internal/logging"
)

type envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// respond writes a success envelope.
func respond(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope{OK: true, Data: data}); err != nil {
		logging.FromContext(r.Context()).Error("encode response", "error", err)
	}
}

// respondError logs the failure and writes a failure envelope with a
// status derived from the error's place in the taxonomy.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	logging.FromContext(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(envelope{OK: false, Error: err.Error()}); encErr != nil {
		logging.FromContext(r.Context()).Error("encode error response", "error", encErr)
	}
}

// statusFor maps the core error taxonomy to HTTP statuses.
func statusFor(err error) int {
	var (
		validation *core.ValidationError
		authz      *core.AuthorizationError
		notFound   *core.NotFoundError
		storeErr   *core.StoreError
		configErr  *core.ConfigError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &authz):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &storeErr):
		return http.StatusBadGateway
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
