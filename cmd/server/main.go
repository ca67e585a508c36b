package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/acrozela/billbook/internal/api"
	"github.com/acrozela/billbook/internal/config"
	"github.com/acrozela/billbook/internal/geo"
	"github.com/acrozela/billbook/internal/google"
	"github.com/acrozela/billbook/internal/middleware"
	"github.com/acrozela/billbook/internal/store"
	"github.com/acrozela/billbook/internal/storage/jsonfile"
	"github.com/acrozela/billbook/pkg/logging"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	storage, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Storage initialized", "file", storage.Path())

	st := store.New(storage)
	connector := google.New(st, google.DefaultDelay)

	server := api.New(st, connector, geo.Unavailable())

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	server.RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	if cfg.StaticDir != "" {
		staticDir, err := filepath.Abs(cfg.StaticDir)
		if err != nil {
			slog.Error("Failed to resolve static path", "error", err)
			os.Exit(1)
		}
		slog.Info("Serving static files", "path", staticDir)
		r.NotFound(staticHandler(staticDir))
	}

	// h2c allows HTTP/2 without TLS for local clients.
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: h2c.NewHandler(r, &http2.Server{}),
	}

	go func() {
		slog.Info("Server starting", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
	if err := st.Flush(); err != nil {
		slog.Error("Final state flush failed", "error", err)
		os.Exit(1)
	}
}

// staticHandler serves the frontend build, falling back to index.html for
// client-side routes.
func staticHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}
