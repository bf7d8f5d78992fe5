package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/api"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/config"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/news"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/prefs"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/user"
	"github.com/aliraza019-js/news-aggregator-by-ali/pkg/storage"
)

func main() {
	_ = godotenv.Load()

	cfgPath := getEnv("NEWS_CONFIG", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.API.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("Failed to create data directory", "error", err)
			os.Exit(1)
		}
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx, user.Schema); err != nil {
		slog.Error("user schema migration failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(ctx, prefs.Schema); err != nil {
		slog.Error("preferences schema migration failed", "error", err)
		os.Exit(1)
	}

	uStore := user.NewStore(db)
	pStore := prefs.NewStore(db)
	aggregator := news.NewAggregator(buildAdapters(cfg)...)

	server := api.NewServer(aggregator, uStore, pStore, cfg.API.JWTSecret)
	handler := corsMiddleware(server.Routes())

	srv := &http.Server{
		Addr:    ":" + cfg.API.Port,
		Handler: handler,
	}

	go func() {
		slog.Info("Starting REST API Server", "port", cfg.API.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
}

// buildAdapters wires one adapter per configured provider. Providers without
// an API key are skipped with a warning so a partial key set still serves.
func buildAdapters(cfg *config.Config) []news.Adapter {
	var adapters []news.Adapter
	if cfg.NewsAPI.APIKey != "" {
		adapters = append(adapters, news.NewNewsAPI(cfg.NewsAPI.BaseURL, cfg.NewsAPI.APIKey))
	} else {
		slog.Warn("NEWSAPI_KEY not set, NewsAPI provider disabled")
	}
	if cfg.Guardian.APIKey != "" {
		adapters = append(adapters, news.NewGuardian(cfg.Guardian.BaseURL, cfg.Guardian.APIKey))
	} else {
		slog.Warn("GUARDIAN_KEY not set, Guardian provider disabled")
	}
	if cfg.NYTimes.APIKey != "" {
		adapters = append(adapters, news.NewNYTimes(cfg.NYTimes.BaseURL, cfg.NYTimes.APIKey))
	} else {
		slog.Warn("NYTIMES_KEY not set, New York Times provider disabled")
	}
	return adapters
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// corsMiddleware allows a local frontend dev server to talk to the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
