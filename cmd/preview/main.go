package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"seasonsite/internal/exporter"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "seasonsite_preview_requests_total",
		Help: "Requests served by the preview server.",
	},
	[]string{"path"},
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dir := flag.String("dir", "docs", "generated site directory to serve")
	rps := flag.Float64("rps", 50, "per-server request rate limit")
	flag.Parse()

	if _, err := os.Stat(*dir); err != nil {
		slog.Error("site directory not found, run sitegen first",
			"dir", *dir, "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(rateLimit(rate.NewLimiter(rate.Limit(*rps), int(*rps)*2)))
	r.Use(countRequests)

	r.Get("/api/stats", statsHandler(*dir))
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", http.FileServer(http.Dir(*dir)))

	server := &http.Server{
		Addr:         *addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("preview server listening", "addr", *addr, "dir", *dir)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("preview server failed", "error", err)
		os.Exit(1)
	}
}

// statsHandler serves the season snapshot written by the last build.
func statsHandler(dir string) http.HandlerFunc {
	snapshotPath := filepath.Join(dir, "data", exporter.SeasonJSON)
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := exporter.ReadSeasonJSON(snapshotPath)
		if err != nil {
			slog.Warn("season snapshot unavailable", "error", err)
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": "no build available"})
			return
		}
		render.JSON(w, r, snapshot)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("elapsed", time.Since(start)))
	})
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues(r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}
