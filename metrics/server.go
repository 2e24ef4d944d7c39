package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/models"
)

const ServerName = "METRICS"

// Server exposes /metrics for prometheus and /health with the service
// healths of this process.
type Server struct {
	server  *http.Server
	healths func() []models.ServiceHealth
	wg      *sync.WaitGroup
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		var healths []models.ServiceHealth
		if s.healths != nil {
			healths = s.healths()
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(healths); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}

func (s *Server) Start() {
	defer s.wg.Done()
	log.Info("[METRICS] Listening on ", s.server.Addr)

	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("[METRICS] Server stopped")
	}
}

func (s *Server) Stop() {
	log.Debug("[METRICS] Stopping server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("[METRICS] Error stopping server")
	}
}

func (s *Server) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:    ServerName,
		Healthy: true,
	}
}

func NewServer(config models.MetricsConfig, healths func() []models.ServiceHealth, wg *sync.WaitGroup) *Server {
	s := &Server{
		healths: healths,
		wg:      wg,
	}
	s.server = &http.Server{
		Addr:              config.ListenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}
