package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "phonechecker/pkg/http"
	"phonechecker/pkg/logger"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Directory string `json:"directory,omitempty"`
}

// ReadinessChecker reports whether a directory is loaded.
type ReadinessChecker interface {
	Loaded() bool
}

type HealthHandler struct {
	checker ReadinessChecker
	log     *logger.Logger
}

func NewHealthHandler(checker ReadinessChecker, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		log:     log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready answers 503 until a directory has been loaded.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !h.checker.Loaded() {
		h.log.Debug("Readiness check failed: no directory loaded", "path", r.URL.Path)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unavailable",
			Directory: "not_loaded",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Directory: "loaded",
	})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
