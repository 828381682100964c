package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopsync/internal/config"
	"shopsync/internal/mapping"
	"shopsync/internal/sync"
	"shopsync/internal/telemetry"
)

func main() {
	var addr string
	var help bool

	flag.StringVar(&addr, "addr", "", "Address to bind (overrides ADDR)")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	ctx := context.Background()
	shutdownLogs, err := telemetry.Setup(ctx, "shopsync")
	if err != nil {
		log.Fatalf("failed to set up telemetry: %v", err)
	}
	defer func() {
		_ = shutdownLogs(context.Background())
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	if err := runServer(cfg); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(cfg *config.Config) error {
	store := mapping.FromEnv()

	mux := http.NewServeMux()

	handler := sync.NewHandler(cfg, store)
	handler.Register(mux)

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.ErrorContext(r.Context(), "failed to write readiness response", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: WithMiddleware(mux),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

func showHelp() {
	fmt.Println("shopsync - product sync endpoint for the HighLevel catalog")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shopsync [-addr :8080]")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  HL_API_TOKEN     HighLevel API bearer token (required)")
	fmt.Println("  HL_LOCATION_ID   HighLevel location id (required)")
	fmt.Println("  HL_BASE_URL      API base URL override")
	fmt.Println("  REDIS_ADDR       redis mapping store address")
	fmt.Println("  MAPPING_DIR      file mapping store directory")
}
