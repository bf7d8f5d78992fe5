// Package api provides the REST API server for the news aggregator.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/news"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/prefs"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/user"
)

// NewsService is the part of the aggregator the handlers consume.
type NewsService interface {
	SearchAllSources(ctx context.Context, opts news.FilterOptions) []news.Article
	TopHeadlines(ctx context.Context) []news.Article
}

// Server holds the dependencies for the API.
type Server struct {
	newsService NewsService
	userStore   *user.Store
	prefsStore  *prefs.Store
	jwtSecret   []byte
	logger      *slog.Logger
}

// NewServer creates a new API Server instance.
func NewServer(svc NewsService, uStore *user.Store, pStore *prefs.Store, jwtSecret string) *Server {
	return &Server{
		newsService: svc,
		userStore:   uStore,
		prefsStore:  pStore,
		jwtSecret:   []byte(jwtSecret),
		logger:      slog.Default(),
	}
}

// Routes returns the configured http.Handler (ServeMux) for the API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Auth routes (Public)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister())
	mux.HandleFunc("POST /api/auth/login", s.handleLogin())

	// Catalog routes (Public)
	mux.HandleFunc("GET /api/news/sources", s.handleSources())
	mux.HandleFunc("GET /api/news/categories", s.handleCategories())

	// News (Protected)
	mux.Handle("GET /api/news/search", s.requireAuthHandler(http.HandlerFunc(s.handleSearch())))
	mux.Handle("GET /api/news/headlines", s.requireAuthHandler(http.HandlerFunc(s.handleHeadlines())))

	// Preferences (Protected)
	mux.Handle("GET /api/preferences", s.requireAuthHandler(http.HandlerFunc(s.handleGetPreferences())))
	mux.Handle("POST /api/preferences/{dimension}", s.requireAuthHandler(http.HandlerFunc(s.handleAddPreference())))
	mux.Handle("DELETE /api/preferences/{dimension}", s.requireAuthHandler(http.HandlerFunc(s.handleRemovePreference())))

	// Saved articles (Protected)
	mux.Handle("GET /api/saved", s.requireAuthHandler(http.HandlerFunc(s.handleListSaved())))
	mux.Handle("POST /api/saved", s.requireAuthHandler(http.HandlerFunc(s.handleSaveArticle())))
	mux.Handle("DELETE /api/saved/{id}", s.requireAuthHandler(http.HandlerFunc(s.handleUnsaveArticle())))

	return mux
}

// --- Helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
