package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shaiso/restaurant/internal/api"
	"github.com/shaiso/restaurant/internal/config"
	"github.com/shaiso/restaurant/internal/mq"
	"github.com/shaiso/restaurant/internal/repo"
	"github.com/shaiso/restaurant/internal/telemetry"
)

var startTime = time.Now()

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := telemetry.SetupLogger(os.Stdout, cfg.Log)
	logger.Info("starting restaurant-api")

	seed, err := repo.LoadSeed(cfg.Menu.SeedFile)
	if err != nil {
		logger.Error("failed to load seed menu", "error", err, "file", cfg.Menu.SeedFile)
		os.Exit(1)
	}
	menuRepo := repo.NewMenuRepo(seed)
	logger.Info("menu loaded", "items", menuRepo.Len())

	if err := telemetry.RegisterMenuSize(prometheus.DefaultRegisterer, menuRepo.Len); err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	handlerCfg := api.Config{
		MenuRepo: menuRepo,
		Logger:   logger,
	}

	// События меню публикуются только при заданном AMQP_URL
	if cfg.AMQP.Enabled() {
		conn, err := mq.NewConnection(cfg.AMQP.URL, "restaurant-api", logger)
		if err != nil {
			logger.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		if err := mq.SetupTopology(context.Background(), conn); err != nil {
			logger.Error("failed to setup topology", "error", err)
			os.Exit(1)
		}
		handlerCfg.Publisher = mq.NewPublisher(conn, logger)
	}

	handler := api.NewHandler(handlerCfg)

	mux := http.NewServeMux()

	// Health и metrics
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	handler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler.Middleware()(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("restaurant API server is running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
