package api

import (
	"net/http"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/category"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/news"
)

// filterOptionsFromQuery maps the request's query string onto the canonical
// filter criteria.
func filterOptionsFromQuery(r *http.Request) news.FilterOptions {
	q := r.URL.Query()
	return news.FilterOptions{
		Keyword:  q.Get("q"),
		Category: q.Get("category"),
		Source:   q.Get("source"),
		DateFrom: q.Get("from"),
		DateTo:   q.Get("to"),
		SortBy:   news.SortBy(q.Get("sortBy")),
	}
}

func (s *Server) handleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := filterOptionsFromQuery(r)
		userID := getUserID(r)

		articles := s.newsService.SearchAllSources(r.Context(), opts)

		prefs, err := s.prefsStore.Get(r.Context(), userID)
		if err != nil {
			s.logger.Error("failed to load preferences, skipping personalization", "user_id", userID, "error", err)
		} else {
			articles = news.ApplyPreferences(articles, prefs)
		}
		articles = news.ApplyFilters(articles, opts)

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"articles": articles,
			"count":    len(articles),
		})
	}
}

func (s *Server) handleHeadlines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := getUserID(r)

		articles := s.newsService.TopHeadlines(r.Context())

		prefs, err := s.prefsStore.Get(r.Context(), userID)
		if err != nil {
			s.logger.Error("failed to load preferences, skipping personalization", "user_id", userID, "error", err)
		} else {
			articles = news.ApplyPreferences(articles, prefs)
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"articles": articles,
			"count":    len(articles),
		})
	}
}

func (s *Server) handleSources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"sources": news.CanonicalSources(),
		})
	}
}

func (s *Server) handleCategories() http.HandlerFunc {
	type entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		cats := category.All()
		list := make([]entry, 0, len(cats))
		for _, c := range cats {
			list = append(list, entry{ID: string(c), Name: category.DisplayName(string(c))})
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"categories": list,
		})
	}
}
