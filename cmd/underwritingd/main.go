package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/application/usecase"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	"github.com/casaflow/underwriting-service/internal/domain/service"
	"github.com/casaflow/underwriting-service/internal/infrastructure/adapter"
	"github.com/casaflow/underwriting-service/internal/infrastructure/cache"
	"github.com/casaflow/underwriting-service/internal/infrastructure/config"
	"github.com/casaflow/underwriting-service/internal/infrastructure/messaging"
	infraPostgres "github.com/casaflow/underwriting-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/casaflow/underwriting-service/internal/presentation/grpc"
	"github.com/casaflow/underwriting-service/internal/presentation/rest"
	"github.com/casaflow/underwriting-service/pkg/auth"
	pkgkafka "github.com/casaflow/underwriting-service/pkg/kafka"
	"github.com/casaflow/underwriting-service/pkg/observability"
	pgpkg "github.com/casaflow/underwriting-service/pkg/postgres"

	redislib "github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Amounts and scores serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.Telemetry.ServiceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	logger.Info("starting underwriting service")

	tracerProvider, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	if tracerProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shutdown tracer provider", "error", err)
			}
		}()
	}

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	// Database.
	connCtx, connCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connCancel()

	pgCfg := pgpkg.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	}
	pool, err := pgpkg.NewPool(connCtx, pgCfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info("connected to database", "database", cfg.DB.Name)

	if err := pgpkg.RunMigrations(pgCfg.DSN(), cfg.DB.MigrationsDir); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	// Repositories and transaction manager.
	appRepo := infraPostgres.NewApplicationRepo(pool)
	reportRepo := infraPostgres.NewAnalysisReportRepo(pool)
	txManager := infraPostgres.NewTxManager(pool)

	// Kafka.
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer kafkaProducer.Close() //nolint:errcheck // best-effort close on shutdown
	publisher := messaging.NewPublisher(kafkaProducer)

	// Credit-risk collaborator: the stub unless a base URL is configured,
	// with a Redis read-through cache layered on top when available.
	var creditClient port.CreditRiskClient
	if cfg.CreditRisk.BaseURL != "" {
		creditClient = adapter.NewCreditRiskAdapter(adapter.CreditRiskConfig{
			BaseURL:        cfg.CreditRisk.BaseURL,
			APIKey:         cfg.CreditRisk.APIKey,
			TimeoutSeconds: cfg.CreditRisk.TimeoutSeconds,
			MaxRetries:     cfg.CreditRisk.MaxRetries,
			RetryBackoffMs: cfg.CreditRisk.RetryBackoffMs,
		}, nil)
		logger.Info("credit risk client configured", "base_url", cfg.CreditRisk.BaseURL)
	} else {
		creditClient = adapter.NewStubCreditRiskClient()
		logger.Warn("no credit risk base URL configured, using stub client")
	}
	if cfg.Redis.Addr != "" {
		redisClient := redislib.NewClient(&redislib.Options{Addr: cfg.Redis.Addr})
		creditClient = adapter.NewCachedCreditRiskClient(
			creditClient,
			cache.NewRedisAssessmentCache(redisClient),
			time.Duration(cfg.Redis.CacheTTLSec)*time.Second,
			logger,
		)
		logger.Info("assessment cache enabled", "addr", cfg.Redis.Addr)
	}

	// Rule engine.
	thresholds := service.DefaultThresholds()
	thresholds.MinCibilScore = cfg.Rules.MinCibilScore
	thresholds.AffordabilityRatio = decimal.NewFromFloat(cfg.Rules.AffordabilityRatio)
	thresholds.MaxLoanToValue = decimal.NewFromFloat(cfg.Rules.MaxLoanToValue)
	analyzer := service.NewAnalyzer(thresholds)

	// Use cases.
	submitUC := usecase.NewSubmitApplicationUseCase(appRepo, publisher, logger)
	analyzeUC := usecase.NewAnalyzeApplicationUseCase(analyzer)
	reportUC := usecase.NewGenerateReportUseCase(analyzer)
	processUC := usecase.NewProcessApplicationUseCase(appRepo, reportRepo, txManager, publisher, creditClient, logger)
	getAppUC := usecase.NewGetApplicationUseCase(appRepo)
	getReportUC := usecase.NewGetAnalysisReportUseCase(reportRepo)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "casaflow-gateway",
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			return fmt.Errorf("load JWT public key file: %w", loadErr)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			jwtSecret = "dev-secret-change-in-prod" // development only
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		return fmt.Errorf("init JWT service: %w", err)
	}

	// gRPC server.
	handler := grpcPresentation.NewUnderwritingHandler(submitUC, analyzeUC, reportUC, processUC, getAppUC, getReportUC)
	grpcServer := grpcPresentation.NewServer(handler, cfg.GRPCAddr(), logger, jwtSvc)

	// HTTP server: health probes and the metrics scrape endpoint.
	healthHandler := rest.NewHealthHandler(cfg.Telemetry.ServiceName, logger)
	healthHandler.AddReadyCheck("database", func(ctx context.Context) error {
		return pgpkg.HealthCheck(ctx, pool)
	})
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)
	httpMux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down servers")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	grpcServer.Stop()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown HTTP server", "error", err)
	}

	logger.Info("underwriting service stopped")
	return nil
}
