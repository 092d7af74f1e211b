package api

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/imagegen"
	"github.com/jalrakshak/jalrakshak/internal/metrics"
	"github.com/jalrakshak/jalrakshak/internal/satellite"
	"github.com/jalrakshak/jalrakshak/internal/store"
)

// Default artificial latencies of the mock inference endpoints.
const (
	DefaultRiskDelay      = 1500 * time.Millisecond
	DefaultSatelliteDelay = 2 * time.Second
)

// Config holds server settings.
type Config struct {
	Port           string
	RiskDelay      time.Duration
	SatelliteDelay time.Duration
}

type Server struct {
	cfg     Config
	store   *store.Store // nil disables the report log
	log     *zap.Logger
	tmpl    *template.Template
	started time.Time

	analyzer  *satellite.Analyzer
	analyzeMu sync.Mutex

	cardCache *imagegen.CardCache
}

// NewServer creates a server. st may be nil.
func NewServer(cfg Config, st *store.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return &Server{
		cfg:       cfg,
		store:     st,
		log:       logger,
		tmpl:      newTemplates(),
		started:   time.Now(),
		analyzer:  satellite.New(),
		cardCache: imagegen.NewCardCache(10 * time.Minute),
	}
}

// SetAnalyzer replaces the satellite analyzer, e.g. with a seeded one.
func (s *Server) SetAnalyzer(a *satellite.Analyzer) {
	s.analyzeMu.Lock()
	s.analyzer = a
	s.analyzeMu.Unlock()
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", s.instrument("index", s.handleIndex))
	mux.Handle("GET /health", s.instrument("health", s.handleHealth))
	mux.Handle("GET /report-card.png", s.instrument("report_card", s.handleReportCard))
	mux.Handle("GET /static/", s.instrument("static", staticHandler().ServeHTTP))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /api/flood-risk", s.instrument("flood_risk", s.handleFloodRisk))
	mux.Handle("POST /api/analyze-satellite", s.instrument("analyze_satellite", s.handleAnalyzeSatellite))
	mux.Handle("POST /api/generate-audio", s.instrument("generate_audio", s.handleGenerateAudio))
	mux.Handle("GET /api/states", s.instrument("states", s.handleStates))
	mux.Handle("GET /api/districts/{state}", s.instrument("districts", s.handleDistricts))
	mux.Handle("GET /api/recommendations/{level}", s.instrument("recommendations", s.handleRecommendations))
	if s.store != nil {
		mux.Handle("GET /api/reports", s.instrument("reports", s.handleReports))
	}
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	s.log.Info("server listening", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// instrument wraps a handler with Prometheus metrics and a debug log line.
func (s *Server) instrument(name string, h http.HandlerFunc) http.Handler {
	labels := prometheus.Labels{"handler": name}
	logged := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		s.log.Debug("request",
			zap.String("handler", name),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
	return promhttp.InstrumentHandlerDuration(
		metrics.HTTPRequestDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(metrics.HTTPRequestsTotal.MustCurryWith(labels), logged),
	)
}

// wait sleeps for d or until the request is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
