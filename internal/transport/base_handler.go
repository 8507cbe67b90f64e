package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/pkg/logger"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every response body.
type Envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func Success[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Status: StatusSuccess, Message: message, Data: data}
}

func Failure(message string, data any) Envelope[any] {
	return Envelope[any]{Status: StatusError, Message: message, Data: data}
}

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteAppError writes err as an error envelope. Validation failures carry
// their field details in data; internal failures hide their cause.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := internal.AsAppError(err)
	log := logger.From(r.Context())

	var data any
	if appErr.Type == internal.ErrorTypeValidation && appErr.Details != nil {
		data = appErr.Details
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		log.Error("request failed", "status", appErr.StatusCode, "code", appErr.Code, "error", err)
	} else {
		log.Debug("request rejected", "status", appErr.StatusCode, "code", appErr.Code, "detail", appErr.GetDetailedMessage())
	}

	h.WriteJSON(w, appErr.StatusCode, Failure(appErr.ClientMessage(), data))
}
