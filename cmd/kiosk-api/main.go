package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jpmattos/kiosk-totem/internal/config"
	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
	"github.com/jpmattos/kiosk-totem/internal/core/ports"
	"github.com/jpmattos/kiosk-totem/internal/infra/adapters/repository"
	"github.com/jpmattos/kiosk-totem/internal/infra/adapters/suggestion"
	"github.com/jpmattos/kiosk-totem/internal/infra/httpx"
	"github.com/jpmattos/kiosk-totem/internal/orderlog"
	orderlogsqlite "github.com/jpmattos/kiosk-totem/internal/orderlog/sqlite"
	"github.com/jpmattos/kiosk-totem/internal/pkg/cache"
	"github.com/jpmattos/kiosk-totem/internal/pkg/telemetry"
	"github.com/jpmattos/kiosk-totem/internal/storage/jsonfile"
)

const serviceName = "kiosk-api"

func main() {
	telemetry.InitLogger(serviceName)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fatal(ctx, "invalid configuration", err)
	}

	for _, dir := range []string{cfg.DataDir, cfg.UploadsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatal(ctx, "create directory", err)
		}
	}

	if cfg.TracingEnabled {
		shutdown, err := telemetry.SetupTracer(ctx, serviceName)
		if err != nil {
			fatal(ctx, "set up tracing", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Error("tracer shutdown failed", "error", err)
			}
		}()
	}

	// The order event log is optional infrastructure: the kiosk keeps
	// selling even when the audit database cannot be opened.
	var events orderlog.Repository
	if cfg.OrderLogPath != "" {
		repo, err := orderlogsqlite.Open(cfg.OrderLogPath)
		if err != nil {
			slog.Warn("order event log disabled", "path", cfg.OrderLogPath, "error", err)
		} else {
			defer repo.Close()
			events = repo
		}
	}

	customers := repository.NewCustomers(
		jsonfile.NewStore[entity.Customer](filepath.Join(cfg.DataDir, "usuarios.json")))
	catalog := repository.NewCatalog(
		jsonfile.NewStore[entity.Product](filepath.Join(cfg.DataDir, "cardapio.json")))
	orders := repository.NewOrderQueue(
		jsonfile.NewStore[entity.QueuedOrder](filepath.Join(cfg.DataDir, "pedidos.json")),
		customers, events)

	var suggestionCache cache.Cache
	if cfg.RedisAddr != "" {
		suggestionCache = cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), serviceName)
	}

	var generator ports.Generator = suggestion.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, "")
	suggester := suggestion.NewService(catalog, customers, generator, suggestionCache, cfg.SuggestionTTL)

	handler := httpx.NewHandler(catalog, customers, orders, suggester, cfg.UploadsDir)
	router := httpx.NewRouter(handler)

	slog.Info("kiosk API listening", "addr", cfg.Addr, "data_dir", cfg.DataDir, "uploads_dir", cfg.UploadsDir)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		fatal(ctx, "http server failed", err)
	}
}

func fatal(ctx context.Context, msg string, err error) {
	slog.ErrorContext(ctx, msg, "error", err)
	os.Exit(1)
}
