package handler

import (
	"net/http"
	"time"

	"dms/internal/domain/models"
	"dms/internal/httputil"
)

// PingHandler serves the liveness routes
type PingHandler struct {
	message string
}

// NewPingHandler creates a ping handler answering with message
func NewPingHandler(message string) *PingHandler {
	return &PingHandler{message: message}
}

// Ping answers the configured ping message
// GET /api/ping
func (h *PingHandler) Ping(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.MessageResponse{Message: h.message})
}

// Demo is a fixed greeting used by front-end smoke checks
// GET /api/demo
func (h *PingHandler) Demo(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.MessageResponse{Message: "Hello from the document management server"})
}

// HealthCheck is a simple health check endpoint
// GET /health
func (h *PingHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}
