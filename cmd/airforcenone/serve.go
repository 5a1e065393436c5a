package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/adsb"
	"github.com/unklstewy/airforcenone/pkg/classify"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Poll continuously and serve the latest report as JSON",
	Long: `Runs a poll cycle every watch.interval and serves the latest result.

Routes:
  GET /health
  GET /api/v1/aircraft             (?tier=priority to filter)
  GET /api/v1/aircraft/{icao}
  GET /api/v1/summary

Browser origins are limited to server.cors_origins.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// reportServer holds the latest report behind a lock for the HTTP handlers.
type reportServer struct {
	router  *chi.Mux
	logger  *zap.SugaredLogger
	origins []string

	mu     sync.RWMutex
	report *classify.Report
}

func newReportServer(logger *zap.SugaredLogger, origins []string) *reportServer {
	s := &reportServer{
		router:  chi.NewRouter(),
		logger:  logger,
		origins: origins,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *reportServer) setupRoutes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/aircraft", s.handleGetAircraft)
		r.Get("/aircraft/{icao}", s.handleGetAircraftByICAO)
		r.Get("/summary", s.handleGetSummary)
	})
}

func (s *reportServer) setReport(r classify.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = &r
}

func (s *reportServer) latest() (classify.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return classify.Report{}, false
	}
	return *s.report, true
}

func (s *reportServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	report, ok := s.latest()
	status := map[string]interface{}{"status": "ok", "ready": ok}
	if ok {
		status["last_poll"] = report.FetchedAt
		if report.Error != "" {
			status["status"] = "degraded"
			status["error"] = report.Error
		}
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *reportServer) handleGetAircraft(w http.ResponseWriter, r *http.Request) {
	report, ok := s.latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no poll completed yet")
		return
	}

	list := report.Aircraft
	if tier := r.URL.Query().Get("tier"); tier != "" {
		filtered := make([]classify.Aircraft, 0, len(list))
		for _, a := range list {
			if strings.EqualFold(string(a.Tier), tier) {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"fetched_at": report.FetchedAt,
		"count":      len(list),
		"aircraft":   list,
	})
}

func (s *reportServer) handleGetAircraftByICAO(w http.ResponseWriter, r *http.Request) {
	report, ok := s.latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no poll completed yet")
		return
	}

	icao := strings.ToLower(chi.URLParam(r, "icao"))
	for _, a := range report.Aircraft {
		if a.ICAO == icao {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
	writeError(w, http.StatusNotFound, "aircraft not currently detected")
}

func (s *reportServer) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	report, ok := s.latest()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no poll completed yet")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"fetched_at": report.FetchedAt,
		"selector":   report.Selector,
		"summary":    report.Summary,
		"error":      report.Error,
	})
}

// requestLogger logs each request through zap.
func (s *reportServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debugw("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// poll runs one cycle immediately, then one per interval, until ctx is done.
func poll(ctx context.Context, interval time.Duration, cycle func(context.Context)) {
	cycle(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cycle(ctx)
		}
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := newReportServer(logger, cfg.Server.CORSOrigins)
	go poll(ctx, cfg.Watch.Interval, func(ctx context.Context) {
		srv.setReport(a.run(ctx, adsb.Military()))
	})

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("Server listening", "addr", httpServer.Addr, "interval", cfg.Watch.Interval)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infow("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	return nil
}
