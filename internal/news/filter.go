package news

import (
	"log/slog"
	"sort"
	"strings"
	"time"
)

// categoryVariations maps a canonical filter category to synonyms that an
// article category may carry instead.
var categoryVariations = map[string][]string{
	"technology":    {"tech", "technological", "digital"},
	"business":      {"economy", "financial", "commerce"},
	"science":       {"scientific", "research", "study"},
	"health":        {"medical", "healthcare", "medicine"},
	"sports":        {"sport", "athletic", "game"},
	"entertainment": {"entertainment", "culture", "arts"},
	"politics":      {"political", "government", "policy"},
	"world":         {"international", "global", "foreign"},
}

// ApplyFilters narrows and orders articles by the ad-hoc search criteria.
// The steps run in a fixed order, each over the previous step's output:
// keyword, category, source, dateFrom, dateTo, sort.
//
// An unparseable date bound is treated as inactive and logged; it never
// fails the pipeline. Sorting is always descending by publish time: the
// relevancy and popularity options are accepted but collapse to date order.
func ApplyFilters(articles []Article, f FilterOptions) []Article {
	filtered := articles

	if f.Keyword != "" {
		filtered = filterByKeyword(filtered, f.Keyword)
	}
	if f.Category != "" {
		filtered = filterByCategory(filtered, f.Category)
	}
	if f.Source != "" {
		filtered = filterBySource(filtered, f.Source)
	}
	if f.DateFrom != "" {
		filtered = filterByDateFrom(filtered, f.DateFrom)
	}
	if f.DateTo != "" {
		filtered = filterByDateTo(filtered, f.DateTo)
	}

	return sortArticles(filtered)
}

func filterByKeyword(articles []Article, keyword string) []Article {
	term := strings.ToLower(keyword)
	return keep(articles, func(a Article) bool {
		return strings.Contains(strings.ToLower(a.Title), term) ||
			strings.Contains(strings.ToLower(a.Description), term) ||
			strings.Contains(strings.ToLower(a.Content), term) ||
			(a.Author != "" && strings.Contains(strings.ToLower(a.Author), term))
	})
}

func filterByCategory(articles []Article, cat string) []Article {
	search := strings.ToLower(cat)
	variations := categoryVariations[search]

	return keep(articles, func(a Article) bool {
		if a.Category == "" {
			return false
		}
		article := strings.ToLower(a.Category)
		if article == search {
			return true
		}
		if strings.Contains(article, search) || strings.Contains(search, article) {
			return true
		}
		for _, v := range variations {
			if strings.Contains(article, v) {
				return true
			}
		}
		return false
	})
}

func filterBySource(articles []Article, source string) []Article {
	return keep(articles, func(a Article) bool {
		return a.Source.Name == source
	})
}

func filterByDateFrom(articles []Article, dateFrom string) []Article {
	from, ok := parseFilterDate(dateFrom)
	if !ok {
		slog.Warn("ignoring unparseable dateFrom filter", "value", dateFrom)
		return articles
	}
	return keep(articles, func(a Article) bool {
		return !a.PublishedAt.Before(from)
	})
}

func filterByDateTo(articles []Article, dateTo string) []Article {
	to, ok := parseFilterDate(dateTo)
	if !ok {
		slog.Warn("ignoring unparseable dateTo filter", "value", dateTo)
		return articles
	}
	return keep(articles, func(a Article) bool {
		return !a.PublishedAt.After(to)
	})
}

func parseFilterDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortArticles(articles []Article) []Article {
	sorted := make([]Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return sorted
}

func keep(articles []Article, pred func(Article) bool) []Article {
	kept := make([]Article, 0, len(articles))
	for _, a := range articles {
		if pred(a) {
			kept = append(kept, a)
		}
	}
	return kept
}
