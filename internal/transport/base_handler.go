package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-directory/internal"
	"github.com/frahmantamala/hr-directory/pkg/logger"
)

// Envelope is the wire shape every endpoint answers with:
// {success: false, message, errors?} on failure, {success: true, ...} otherwise.
type Envelope map[string]interface{}

// BaseHandler provides common functionality for HTTP handlers.
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a raw JSON response.
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteData writes a {success: true, data} response.
func (h *BaseHandler) WriteData(w http.ResponseWriter, status int, data interface{}) {
	h.WriteJSON(w, status, Envelope{"success": true, "data": data})
}

// WriteList writes a {success: true, count, data} response for list endpoints.
func (h *BaseHandler) WriteList(w http.ResponseWriter, status int, count int, data interface{}) {
	h.WriteJSON(w, status, Envelope{"success": true, "count": count, "data": data})
}

// WriteError writes a {success: false, message} response.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Warn("http error", "status", status, "message", message)
	h.WriteJSON(w, status, Envelope{"success": false, "message": message})
}

// HandleServiceError converts a service error into the response envelope.
// Unexpected errors become a generic 500 without leaking internals.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		resp := Envelope{"success": false, "message": appErr.Message}
		if ve, ok := appErr.Details.(internal.ValidationErrors); ok {
			resp["errors"] = ve.Errors
		}
		if appErr.StatusCode >= http.StatusInternalServerError {
			h.Logger.Error("internal error", "error", appErr.Error(), "code", appErr.Code)
			resp["message"] = "Internal server error"
		} else {
			h.Logger.Warn("request failed", "status", appErr.StatusCode, "code", appErr.Code, "message", appErr.Message)
		}
		h.WriteJSON(w, appErr.StatusCode, resp)
		return
	}

	h.Logger.Error("unexpected error", "error", err)
	h.WriteJSON(w, http.StatusInternalServerError, Envelope{"success": false, "message": "Internal server error"})
}

// ExtractTokenFromHeader extracts the Bearer token from the Authorization header.
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
