package monitoring

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// HealthServer exposes /health and /status for the daemon mode.
type HealthServer struct {
	monitor *Monitor
	port    string
	log     zerolog.Logger
}

func NewHealthServer(monitor *Monitor, port string, log zerolog.Logger) *HealthServer {
	if port == "" {
		port = "8080"
	}
	return &HealthServer{
		monitor: monitor,
		port:    port,
		log:     log,
	}
}

func (h *HealthServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.healthHandler)
	mux.HandleFunc("/status", h.statusHandler)

	h.log.Info().Str("port", h.port).Msg("Health check server starting")
	go func() {
		if err := http.ListenAndServe(":"+h.port, mux); err != nil {
			h.log.Error().Err(err).Msg("Health server error")
		}
	}()
}

func (h *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if h.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", h.monitor.GetStatusSummary())
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Service unhealthy - %s", h.monitor.GetStatusSummary())
	}
}

func (h *HealthServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s", h.monitor.GetStatusSummary())
}
