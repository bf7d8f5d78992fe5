package api

import (
	"encoding/json"
	"net/http"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/prefs"
)

func (s *Server) handleGetPreferences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := getUserID(r)

		p, err := s.prefsStore.Get(r.Context(), userID)
		if err != nil {
			s.logger.Error("failed to load preferences", "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

type preferenceRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleAddPreference() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := getUserID(r)
		dim := prefs.Dimension(r.PathValue("dimension"))
		if !dim.Valid() {
			respondError(w, http.StatusBadRequest, "Unknown preference dimension")
			return
		}

		var req preferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Value == "" {
			respondError(w, http.StatusBadRequest, "Value is required")
			return
		}

		if err := s.prefsStore.Add(r.Context(), userID, dim, req.Value); err != nil {
			s.logger.Error("failed to add preference", "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{"message": "Preference added"})
	}
}

func (s *Server) handleRemovePreference() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := getUserID(r)
		dim := prefs.Dimension(r.PathValue("dimension"))
		if !dim.Valid() {
			respondError(w, http.StatusBadRequest, "Unknown preference dimension")
			return
		}

		value := r.URL.Query().Get("value")
		if value == "" {
			respondError(w, http.StatusBadRequest, "Value is required")
			return
		}

		if err := s.prefsStore.Remove(r.Context(), userID, dim, value); err != nil {
			s.logger.Error("failed to remove preference", "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "Preference removed"})
	}
}

type saveArticleRequest struct {
	ArticleID string `json:"article_id"`
}

func (s *Server) handleListSaved() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := getUserID(r)

		ids, err := s.prefsStore.SavedArticles(r.Context(), userID)
		if err != nil {
			s.logger.Error("failed to list saved articles", "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if ids == nil {
			ids = []string{}
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"article_ids": ids,
		})
	}
}

func (s *Server) handleSaveArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := getUserID(r)

		var req saveArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.ArticleID == "" {
			respondError(w, http.StatusBadRequest, "Article ID is required")
			return
		}

		if err := s.prefsStore.SaveArticle(r.Context(), userID, req.ArticleID); err != nil {
			s.logger.Error("failed to save article", "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{"message": "Article saved"})
	}
}

func (s *Server) handleUnsaveArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := getUserID(r)
		articleID := r.PathValue("id")
		if articleID == "" {
			respondError(w, http.StatusBadRequest, "Article ID is required")
			return
		}

		if err := s.prefsStore.UnsaveArticle(r.Context(), userID, articleID); err != nil {
			s.logger.Error("failed to unsave article", "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "Article removed"})
	}
}
