package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aliraza019-js/news-aggregator-by-ali/pkg/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(context.Background(), Schema); err != nil {
		t.Fatal(err)
	}
	return NewStore(db)
}

func TestGetEmptyForNewUser(t *testing.T) {
	s := newTestStore(t)
	prefs, err := s.Get(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !prefs.IsEmpty() {
		t.Fatalf("new user must have empty preferences, got %+v", prefs)
	}
}

func TestAddCollapsesDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.Add(ctx, 1, DimSource, "BBC News"); err != nil {
			t.Fatal(err)
		}
	}
	prefs, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(prefs.PreferredSources) != 1 || prefs.PreferredSources[0] != "BBC News" {
		t.Fatalf("duplicates must collapse, got %v", prefs.PreferredSources)
	}
}

func TestAddRemoveAcrossDimensions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, 1, DimSource, "The Guardian"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, 1, DimCategory, "technology"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, 1, DimAuthor, "Jane Smith"); err != nil {
		t.Fatal(err)
	}

	prefs, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(prefs.PreferredSources) != 1 || len(prefs.PreferredCategories) != 1 || len(prefs.PreferredAuthors) != 1 {
		t.Fatalf("unexpected preferences: %+v", prefs)
	}

	if err := s.Remove(ctx, 1, DimCategory, "technology"); err != nil {
		t.Fatal(err)
	}
	prefs, err = s.Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(prefs.PreferredCategories) != 0 {
		t.Fatalf("category not removed: %v", prefs.PreferredCategories)
	}
	// Removing an absent value is a no-op, not an error.
	if err := s.Remove(ctx, 1, DimCategory, "technology"); err != nil {
		t.Fatal(err)
	}
}

func TestPreferencesAreScopedPerUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, 1, DimSource, "CNN"); err != nil {
		t.Fatal(err)
	}
	prefs, err := s.Get(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !prefs.IsEmpty() {
		t.Fatalf("user 2 must not see user 1's preferences: %+v", prefs)
	}
}

func TestUnknownDimensionRejected(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(context.Background(), 1, Dimension("mood"), "happy"); err == nil {
		t.Fatal("expected an error for an unknown dimension")
	}
}

func TestSavedArticles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"newsapi-0", "nyt://article/abc", "newsapi-0"} {
		if err := s.SaveArticle(ctx, 1, id); err != nil {
			t.Fatal(err)
		}
	}
	ids, err := s.SavedArticles(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 saved IDs, got %v", ids)
	}

	if err := s.UnsaveArticle(ctx, 1, "newsapi-0"); err != nil {
		t.Fatal(err)
	}
	ids, err = s.SavedArticles(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "nyt://article/abc" {
		t.Fatalf("unexpected saved IDs after unsave: %v", ids)
	}
}

func TestDefaultPreferences(t *testing.T) {
	d := DefaultPreferences()
	if len(d.PreferredSources) != 3 {
		t.Fatalf("expected 3 default sources, got %v", d.PreferredSources)
	}
}
