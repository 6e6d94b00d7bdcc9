package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/luxecuffs/storefront/internal/pkg/cache"
	"github.com/luxecuffs/storefront/internal/pkg/telemetry"
	"github.com/luxecuffs/storefront/internal/storefront/checkout"
	"github.com/luxecuffs/storefront/internal/storefront/checkout/checklog"
	checklogsqlite "github.com/luxecuffs/storefront/internal/storefront/checkout/checklog/sqlite"
	"github.com/luxecuffs/storefront/internal/storefront/config"
	"github.com/luxecuffs/storefront/internal/storefront/httpx"
	"github.com/luxecuffs/storefront/internal/storefront/mail"
	"github.com/luxecuffs/storefront/internal/storefront/payment"
	"github.com/luxecuffs/storefront/internal/storefront/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetry.InitLogger()

	shutdownTracer, err := telemetry.SetupTracer(ctx, getEnv("OTEL_SERVICE_NAME", "storefront"))
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	cfg := config.Load()

	records := store.NewMemory()
	if err := store.Seed(records); err != nil {
		slog.Error("failed to seed store", "error", err)
		os.Exit(1)
	}

	var auditLog checklog.Repository
	if cfg.CheckoutLogPath != "" {
		repo, err := checklogsqlite.Open(cfg.CheckoutLogPath)
		if err != nil {
			slog.Error("failed to open checkout log", "path", cfg.CheckoutLogPath, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		auditLog = repo
	}

	var catalogCache cache.Cache
	if cfg.RedisAddr != "" {
		catalogCache = cache.NewRedisCache(cfg.RedisAddr, "storefront")
		slog.Info("catalog cache enabled", "addr", cfg.RedisAddr)
	}

	var gateway payment.Gateway
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey)
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set, using in-process fake gateway")
		gateway = payment.NewFakeGateway()
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dispatcher := mail.NewDispatcher(mailer, cfg.FromEmail, cfg.OperatorEmail)

	orchestrator := checkout.NewOrchestrator(records, gateway, dispatcher, auditLog)

	handler := httpx.NewHandler(records, orchestrator, catalogCache)
	router := httpx.NewRouter(handler)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: otelhttp.NewHandler(router, "storefront"),
	}

	go func() {
		slog.Info("storefront running", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
