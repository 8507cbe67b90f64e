package rest

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/transport"
	"github.com/frahmantamala/hrms-backend/pkg/logger"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
)

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	CheckedAt  time.Time    `json:"checked_at"`
	DurationMs int64        `json:"duration_ms"`
}

type HealthHandler struct {
	*transport.BaseHandler
	db      *sql.DB
	timeout time.Duration
}

func NewHealthHandler(baseHandler *transport.BaseHandler, db *sql.DB) *HealthHandler {
	return &HealthHandler{BaseHandler: baseHandler, db: db, timeout: 2 * time.Second}
}

// liveness never touches the store.
func (h *HealthHandler) livenessHandler(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, transport.Success("Application is running smoothly",
		map[string]HealthStatus{"status": HealthHealthy}))
}

// readinessHandler pings the database.
func (h *HealthHandler) readinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	entry := CheckEntry{Status: HealthHealthy}

	if h.db == nil {
		entry.Status = HealthUnhealthy
		entry.Message = "database not configured"
	} else if err := h.db.PingContext(ctx); err != nil {
		logger.From(r.Context()).Warn("readiness check failed", "error", err)
		entry.Status = HealthUnhealthy
		entry.Message = "database unreachable"
	}
	entry.CheckedAt = time.Now()
	entry.DurationMs = time.Since(start).Milliseconds()

	resp := HealthResponse{
		Status:     entry.Status,
		CheckedAt:  entry.CheckedAt,
		Components: map[string]CheckEntry{"postgres": entry},
	}

	if entry.Status == HealthUnhealthy {
		h.WriteJSON(w, http.StatusServiceUnavailable, transport.Envelope[HealthResponse]{
			Status:  transport.StatusError,
			Message: "Application is not ready",
			Data:    resp,
		})
		return
	}
	h.WriteJSON(w, http.StatusOK, transport.Success("Application is ready", resp))
}
