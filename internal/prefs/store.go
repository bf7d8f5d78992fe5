// Package prefs persists per-user feed preferences and saved-article IDs.
package prefs

import (
	"context"
	"fmt"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/news"
	"github.com/aliraza019-js/news-aggregator-by-ali/pkg/storage"
)

// Dimension is one of the three axes a user can constrain their feed by.
type Dimension string

const (
	DimSource   Dimension = "source"
	DimCategory Dimension = "category"
	DimAuthor   Dimension = "author"
)

// Valid reports whether d is a known preference dimension.
func (d Dimension) Valid() bool {
	switch d {
	case DimSource, DimCategory, DimAuthor:
		return true
	}
	return false
}

// Schema is the SQLite schema for preference storage. The unique constraints
// give the preference slices set semantics and serialize concurrent inserts
// of the same value.
const Schema = `
CREATE TABLE IF NOT EXISTS preferences (
    user_id    INTEGER NOT NULL,
    dimension  TEXT NOT NULL CHECK (dimension IN ('source', 'category', 'author')),
    value      TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (user_id, dimension, value)
);

CREATE TABLE IF NOT EXISTS saved_articles (
    user_id    INTEGER NOT NULL,
    article_id TEXT NOT NULL,
    saved_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (user_id, article_id)
);

CREATE INDEX IF NOT EXISTS idx_preferences_user ON preferences(user_id);
CREATE INDEX IF NOT EXISTS idx_saved_articles_user ON saved_articles(user_id);
`

// Store provides preference persistence. All failures are plain errors;
// callers on the read path treat them as best-effort.
type Store struct {
	db *storage.DB
}

// NewStore creates a preference store over the given database.
func NewStore(db *storage.DB) *Store {
	return &Store{db: db}
}

// DefaultPreferences returns the preference set suggested to new users.
func DefaultPreferences() news.UserPreferences {
	return news.UserPreferences{
		PreferredSources: []string{"The Guardian", "The New York Times", "BBC News"},
	}
}

// Get loads a user's preferences. A user with no stored rows gets the empty
// preference set, which the filter layer treats as "no filtering".
func (s *Store) Get(ctx context.Context, userID int64) (news.UserPreferences, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT dimension, value FROM preferences WHERE user_id = ? ORDER BY created_at, value`,
		userID)
	if err != nil {
		return news.UserPreferences{}, fmt.Errorf("load preferences: %w", err)
	}
	defer rows.Close()

	var prefs news.UserPreferences
	for rows.Next() {
		var dim Dimension
		var value string
		if err := rows.Scan(&dim, &value); err != nil {
			return news.UserPreferences{}, fmt.Errorf("scan preference: %w", err)
		}
		switch dim {
		case DimSource:
			prefs.PreferredSources = append(prefs.PreferredSources, value)
		case DimCategory:
			prefs.PreferredCategories = append(prefs.PreferredCategories, value)
		case DimAuthor:
			prefs.PreferredAuthors = append(prefs.PreferredAuthors, value)
		}
	}
	return prefs, rows.Err()
}

// Add inserts a preference value. Duplicates collapse silently.
func (s *Store) Add(ctx context.Context, userID int64, dim Dimension, value string) error {
	if !dim.Valid() {
		return fmt.Errorf("unknown preference dimension %q", dim)
	}
	if value == "" {
		return fmt.Errorf("empty preference value")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO preferences (user_id, dimension, value) VALUES (?, ?, ?)`,
		userID, dim, value)
	if err != nil {
		return fmt.Errorf("add preference: %w", err)
	}
	return nil
}

// Seed populates a user's preferences with the default set. Values that
// already exist are left alone.
func (s *Store) Seed(ctx context.Context, userID int64) error {
	defaults := DefaultPreferences()
	for dim, values := range map[Dimension][]string{
		DimSource:   defaults.PreferredSources,
		DimCategory: defaults.PreferredCategories,
		DimAuthor:   defaults.PreferredAuthors,
	} {
		for _, v := range values {
			if err := s.Add(ctx, userID, dim, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Remove deletes a preference value. Removing an absent value is a no-op.
func (s *Store) Remove(ctx context.Context, userID int64, dim Dimension, value string) error {
	if !dim.Valid() {
		return fmt.Errorf("unknown preference dimension %q", dim)
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE user_id = ? AND dimension = ? AND value = ?`,
		userID, dim, value)
	if err != nil {
		return fmt.Errorf("remove preference: %w", err)
	}
	return nil
}

// SaveArticle records an article ID in the user's saved list.
func (s *Store) SaveArticle(ctx context.Context, userID int64, articleID string) error {
	if articleID == "" {
		return fmt.Errorf("empty article id")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO saved_articles (user_id, article_id) VALUES (?, ?)`,
		userID, articleID)
	if err != nil {
		return fmt.Errorf("save article: %w", err)
	}
	return nil
}

// UnsaveArticle removes an article ID from the user's saved list.
func (s *Store) UnsaveArticle(ctx context.Context, userID int64, articleID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_articles WHERE user_id = ? AND article_id = ?`,
		userID, articleID)
	if err != nil {
		return fmt.Errorf("unsave article: %w", err)
	}
	return nil
}

// SavedArticles lists the user's saved article IDs, oldest first.
func (s *Store) SavedArticles(ctx context.Context, userID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT article_id FROM saved_articles WHERE user_id = ? ORDER BY saved_at, article_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("load saved articles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan saved article: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
