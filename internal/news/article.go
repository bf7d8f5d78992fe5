// Package news implements the aggregation pipeline: provider adapters that
// normalize heterogeneous upstream responses into one canonical article
// shape, a concurrent aggregator that merges and deduplicates them, and the
// preference/query filter layers that produce the final ordered view.
package news

import "time"

// Source identifies where an article came from. Name is the display key and
// must match the canonical source names used by the filters exactly.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is the canonical article shape shared by every provider adapter.
// Instances are constructed once per aggregation call and not mutated after.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      Source    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
}

// SortBy selects the ordering of a filtered result set.
type SortBy string

const (
	SortRelevancy   SortBy = "relevancy"
	SortPopularity  SortBy = "popularity"
	SortPublishedAt SortBy = "publishedAt"
)

// FilterOptions carries the ad-hoc search criteria for one request. The same
// shape drives both the remote provider queries and the local query filter.
// Dates are ISO-8601 strings ("2006-01-02" or full RFC 3339).
type FilterOptions struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Source   string `json:"source"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	SortBy   SortBy `json:"sortBy"`
}

// UserPreferences are a user's standing feed constraints. Each slice has set
// semantics: order is irrelevant and duplicates are collapsed on insert.
type UserPreferences struct {
	PreferredSources    []string `json:"preferredSources"`
	PreferredCategories []string `json:"preferredCategories"`
	PreferredAuthors    []string `json:"preferredAuthors"`
}

// IsEmpty reports whether no preference dimension is configured.
func (p UserPreferences) IsEmpty() bool {
	return len(p.PreferredSources) == 0 &&
		len(p.PreferredCategories) == 0 &&
		len(p.PreferredAuthors) == 0
}

// timestampLayouts covers the publish-date formats the three providers emit.
// NYTimes uses a numeric zone without a colon.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02",
}

// parseTimestamp parses a provider publish date, returning the zero time for
// anything unrecognizable rather than failing the whole response.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
