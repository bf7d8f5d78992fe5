package news

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeAdapter is a canned-response Adapter for aggregator tests.
type fakeAdapter struct {
	name     string
	owned    map[string]bool
	articles []Article
	err      error
	calls    int
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) OwnsSource(name string) bool { return f.owned[name] }

func (f *fakeAdapter) Search(ctx context.Context, _ FilterOptions) ([]Article, error) {
	f.calls++
	return f.articles, f.err
}

func (f *fakeAdapter) Headlines(ctx context.Context) ([]Article, error) {
	f.calls++
	return f.articles, f.err
}

func article(id, title, source string, published time.Time) Article {
	return Article{
		ID:          id,
		Title:       title,
		Source:      Source{ID: source, Name: source},
		PublishedAt: published,
	}
}

func TestSearchAllSourcesDeduplicates(t *testing.T) {
	now := time.Now()
	first := &fakeAdapter{name: "A", articles: []Article{
		article("a-0", "Storm hits coast", "BBC News", now),
		article("a-1", "Quiet day", "BBC News", now),
	}}
	second := &fakeAdapter{name: "B", articles: []Article{
		article("b-0", "Storm hits coast", "BBC News", now.Add(-time.Hour)),
		article("b-1", "Storm hits coast", "The Guardian", now),
	}}

	got := NewAggregator(first, second).SearchAllSources(context.Background(), FilterOptions{})
	if len(got) != 3 {
		t.Fatalf("expected 3 articles after dedup, got %d", len(got))
	}
	// First occurrence wins: the surviving BBC storm article comes from A.
	if got[0].ID != "a-0" {
		t.Fatalf("expected a-0 to survive, got %s", got[0].ID)
	}
	// Same title under a different source name is not a duplicate.
	if got[2].ID != "b-1" {
		t.Fatalf("expected the Guardian storm article to survive, got %s", got[2].ID)
	}
}

func TestSearchAllSourcesAbsorbsAdapterFailure(t *testing.T) {
	healthy := &fakeAdapter{name: "A", articles: []Article{
		article("a-0", "Fine", "BBC News", time.Now()),
	}}
	broken := &fakeAdapter{name: "B", err: errors.New("upstream down")}

	articles, outcomes := NewAggregator(healthy, broken).
		SearchAllSourcesReport(context.Background(), FilterOptions{})

	if len(articles) != 1 {
		t.Fatalf("one failing adapter must not blank the merge, got %d articles", len(articles))
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Degraded() {
		t.Error("healthy adapter reported degraded")
	}
	if !outcomes[1].Degraded() {
		t.Error("broken adapter not reported degraded")
	}
}

func TestSearchAllSourcesTotalOutageYieldsEmpty(t *testing.T) {
	a := &fakeAdapter{name: "A", err: errors.New("down")}
	b := &fakeAdapter{name: "B", err: errors.New("down")}
	got := NewAggregator(a, b).SearchAllSources(context.Background(), FilterOptions{})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestSearchAllSourcesSelectsOwningAdapter(t *testing.T) {
	owner := &fakeAdapter{name: "A", owned: map[string]bool{"BBC News": true}}
	other := &fakeAdapter{name: "B"}

	NewAggregator(owner, other).SearchAllSources(context.Background(), FilterOptions{Source: "BBC News"})
	if owner.calls != 1 {
		t.Error("owning adapter was not invoked")
	}
	if other.calls != 0 {
		t.Error("non-owning adapter was invoked")
	}
}

func TestSearchAllSourcesUnknownSourceYieldsEmpty(t *testing.T) {
	a := &fakeAdapter{name: "A", articles: []Article{article("a-0", "x", "s", time.Now())}}
	got := NewAggregator(a).SearchAllSources(context.Background(), FilterOptions{Source: "Nobody Owns This"})
	if len(got) != 0 {
		t.Fatalf("unowned source must yield empty, got %d", len(got))
	}
}

func TestTopHeadlinesSortsNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a := &fakeAdapter{name: "A", articles: []Article{
		article("a-0", "older", "X", base),
	}}
	b := &fakeAdapter{name: "B", articles: []Article{
		article("b-0", "newer", "Y", base.Add(time.Hour)),
	}}

	got := NewAggregator(a, b).TopHeadlines(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(got))
	}
	if got[0].ID != "b-0" {
		t.Fatalf("expected newest first, got %s", got[0].ID)
	}
}
