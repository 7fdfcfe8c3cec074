package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dms/internal/config"
	"dms/internal/formdesign"
	"dms/internal/handler"
	"dms/internal/metrics"
	"dms/internal/middleware"
	"dms/internal/mockdata"
	"dms/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.IsDev() {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, "server", cfg.LogMaxFiles)
		if err != nil {
			return fmt.Errorf("setup log file: %w", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"formdesign_api", cfg.FormDesign.BaseURL,
		"adapter", cfg.FormDesign.Adapter,
	)
	if !cfg.FormDesign.VerifyTLS {
		logger.Warn("TLS certificate validation disabled for the FormDesign API (local development only)")
	}

	// Provider adapters
	adapters, err := formdesign.NewRegistry()
	if err != nil {
		return fmt.Errorf("load adapters: %w", err)
	}
	if cfg.FormDesign.AdapterFile != "" {
		loaded, err := adapters.LoadFile(cfg.FormDesign.AdapterFile)
		if err != nil {
			return fmt.Errorf("load adapter file: %w", err)
		}
		logger.Info("adapter loaded from file", "name", loaded.Name, "file", cfg.FormDesign.AdapterFile)
	}
	adapter, err := adapters.Get(cfg.FormDesign.Adapter)
	if err != nil {
		return fmt.Errorf("select adapter (known: %v): %w", adapters.Names(), err)
	}

	// Upstream client
	client, err := formdesign.NewHTTPClient(
		cfg.FormDesign.BaseURL,
		adapter.Endpoints,
		cfg.FormDesign.Timeout,
		cfg.FormDesign.VerifyTLS,
	)
	if err != nil {
		return fmt.Errorf("create FormDesign client: %w", err)
	}

	// Mock data
	dataset, err := mockdata.Load()
	if err != nil {
		return fmt.Errorf("load mock data: %w", err)
	}

	// Services
	catalogService := service.NewCatalogService(dataset, cfg.Mock.TypesDelay, cfg.Mock.DesignsDelay, logger)
	formDesignService := service.NewFormDesignService(client, adapter, cfg.FormDesign.BaseURL, logger)

	// Handlers
	pingHandler := handler.NewPingHandler(cfg.PingMessage)
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	formDesignHandler := handler.NewFormDesignHandler(formDesignService, logger)
	uiHandler, err := handler.NewUIHandler(cfg.PortalBaseURL, logger)
	if err != nil {
		return err
	}

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health / liveness
	mux.HandleFunc("GET /health", pingHandler.HealthCheck)
	mux.HandleFunc("GET /api/ping", pingHandler.Ping)
	mux.HandleFunc("GET /api/demo", pingHandler.Demo)

	// Mock routes
	mux.HandleFunc("GET /api/document-types", catalogHandler.ListDocumentTypes)
	mux.HandleFunc("GET /api/document-designs/{type}", catalogHandler.ListDocumentDesigns)

	// FormDesign proxy routes
	mux.HandleFunc("GET /api/form-design/document-types", formDesignHandler.ListDocumentTypes)
	mux.HandleFunc("GET /api/form-design/designs-by-type/{docTypeId}", formDesignHandler.ListDesignsByType)
	mux.HandleFunc("GET /api/form-design/design-versions/{formDesignId}", formDesignHandler.ListDesignVersions)

	// Everything else under /api/ answers a JSON 404
	mux.Handle("/api/", middleware.UnknownRoute(logger))

	// Browser page
	mux.HandleFunc("GET /{$}", uiHandler.Index)
	mux.HandleFunc("GET /static/", uiHandler.Static)
	mux.HandleFunc("/", uiHandler.NotFound)

	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, metrics.Handler())
	}

	// Build middleware chain
	// Order: CORS → RequestLogger → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOriginList(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.FormDesign.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
