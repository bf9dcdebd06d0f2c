package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "holdings/internal/http"
	"holdings/internal/platform/config"
	"holdings/internal/platform/httpserver"
	"holdings/internal/platform/logger"
	"holdings/internal/property"
	propmetrics "holdings/internal/property/metrics"
	"holdings/internal/property/service"
	"holdings/internal/property/store"
	"holdings/pkg/hashing"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// The registry is constructed here, once, and injected everywhere it is
// needed; there is no package-level mutable state.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	registry := store.NewInMemory()
	m := propmetrics.New()

	svc := property.NewService(registry, hashing.New(),
		service.WithLogger(log),
		service.WithMetrics(m),
	)
	handler := property.NewHandler(svc, log, m)

	router := httpapi.NewRouter(handler, log, cfg.RequestTimeout)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting holdings registry", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
