package news

import "strings"

// ApplyPreferences narrows articles to those matching a user's standing
// preferences. With no preference configured it returns the input unchanged,
// order included. Otherwise every non-empty dimension must be satisfied:
//   - source: the article's source name is a preferred source (exact match),
//   - category: the article has a category and it is a preferred category
//     (case-insensitive),
//   - author: the article has an author and some preferred author string is
//     a case-insensitive substring of it.
func ApplyPreferences(articles []Article, prefs UserPreferences) []Article {
	if prefs.IsEmpty() {
		return articles
	}

	matched := make([]Article, 0, len(articles))
	for _, a := range articles {
		if matchesPreferences(a, prefs) {
			matched = append(matched, a)
		}
	}
	return matched
}

func matchesPreferences(a Article, prefs UserPreferences) bool {
	if len(prefs.PreferredSources) > 0 && !containsString(prefs.PreferredSources, a.Source.Name) {
		return false
	}
	if len(prefs.PreferredCategories) > 0 {
		if a.Category == "" || !containsFold(prefs.PreferredCategories, a.Category) {
			return false
		}
	}
	if len(prefs.PreferredAuthors) > 0 {
		if a.Author == "" || !authorMatches(prefs.PreferredAuthors, a.Author) {
			return false
		}
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func authorMatches(preferred []string, author string) bool {
	author = strings.ToLower(author)
	for _, p := range preferred {
		if strings.Contains(author, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
