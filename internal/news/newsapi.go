package news

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/category"
)

// newsAPISources maps the canonical source names NewsAPI can be scoped to
// onto their native source identifiers.
var newsAPISources = map[string]string{
	"BBC News":            "bbc-news",
	"CNN":                 "cnn",
	"Reuters":             "reuters",
	"Associated Press":    "associated-press",
	"USA Today":           "usa-today",
	"NPR":                 "npr",
	"Al Jazeera":          "al-jazeera-english",
	"The Washington Post": "the-washington-post",
}

// NewsAPI adapts the newsapi.org v2 endpoints. Unlike the other providers it
// aggregates many outlets, so it owns several canonical source names and
// supports source-scoped queries through native source IDs.
type NewsAPI struct {
	baseURL  string
	apiKey   string
	pageSize int
	language string
	client   httpDoer
}

// NewNewsAPI creates a NewsAPI adapter against the given base URL.
func NewNewsAPI(baseURL, apiKey string) *NewsAPI {
	return &NewsAPI{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: defaultPageSize,
		language: defaultLanguage,
		client:   newHTTPClient(),
	}
}

func (n *NewsAPI) Name() string { return "NewsAPI" }

func (n *NewsAPI) OwnsSource(name string) bool {
	if name == n.Name() {
		return true
	}
	_, ok := newsAPISources[name]
	return ok
}

// SourceID resolves a canonical source name to NewsAPI's native identifier.
func (n *NewsAPI) SourceID(name string) (string, bool) {
	id, ok := newsAPISources[name]
	return id, ok
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

func (n *NewsAPI) Search(ctx context.Context, f FilterOptions) ([]Article, error) {
	var mapped string
	if f.Category != "" {
		mapped = category.MapForProvider(f.Category, category.ProviderNewsAPI)
	}

	// Source-targeted request: prefer a native source-scoped headline query,
	// fall back to post-filtering the broad search result.
	if f.Source != "" && f.Source != n.Name() {
		if id, ok := n.SourceID(f.Source); ok {
			params := url.Values{"sources": {id}}
			if mapped != "" {
				params.Set("category", mapped)
			}
			if articles, err := n.topHeadlines(ctx, params, "newsapi-headlines"); err == nil {
				return articles, nil
			}
		}
		articles, err := n.search(ctx, f, mapped)
		if err != nil {
			return nil, err
		}
		scoped := make([]Article, 0, len(articles))
		for _, a := range articles {
			if a.Source.Name == f.Source {
				scoped = append(scoped, a)
			}
		}
		return scoped, nil
	}

	return n.search(ctx, f, mapped)
}

func (n *NewsAPI) Headlines(ctx context.Context) ([]Article, error) {
	return n.topHeadlines(ctx, url.Values{"country": {"us"}}, "newsapi-headlines")
}

func (n *NewsAPI) search(ctx context.Context, f FilterOptions, mappedCategory string) ([]Article, error) {
	params := url.Values{
		"apiKey":   {n.apiKey},
		"language": {n.language},
		"pageSize": {fmt.Sprint(n.pageSize)},
	}
	if f.Keyword != "" {
		params.Set("q", f.Keyword)
	}
	if mappedCategory != "" {
		params.Set("category", mappedCategory)
	}
	if f.DateFrom != "" {
		params.Set("from", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("to", f.DateTo)
	}
	if f.SortBy != "" {
		params.Set("sortBy", string(f.SortBy))
	}

	var resp newsAPIResponse
	if err := getJSON(ctx, n.client, n.baseURL, "/everything", params, &resp); err != nil {
		return nil, err
	}
	return n.transform(resp.Articles, "newsapi"), nil
}

func (n *NewsAPI) topHeadlines(ctx context.Context, params url.Values, idPrefix string) ([]Article, error) {
	params.Set("apiKey", n.apiKey)
	params.Set("pageSize", fmt.Sprint(n.pageSize))

	var resp newsAPIResponse
	if err := getJSON(ctx, n.client, n.baseURL, "/top-headlines", params, &resp); err != nil {
		return nil, err
	}
	return n.transform(resp.Articles, idPrefix), nil
}

// transform maps raw NewsAPI items onto the canonical shape. NewsAPI has no
// stable per-article ID, so IDs are provider-namespaced positional indexes.
// The raw items carry no category either; the classifier infers one.
func (n *NewsAPI) transform(items []newsAPIArticle, idPrefix string) []Article {
	articles := make([]Article, 0, len(items))
	for i, it := range items {
		srcID := it.Source.ID
		if srcID == "" {
			srcID = it.Source.Name
		}
		desc := cleanText(it.Description)
		content := cleanText(it.Content)
		articles = append(articles, Article{
			ID:          fmt.Sprintf("%s-%d", idPrefix, i),
			Title:       it.Title,
			Description: desc,
			Content:     content,
			URL:         it.URL,
			ImageURL:    it.URLToImage,
			PublishedAt: parseTimestamp(it.PublishedAt),
			Source:      Source{ID: srcID, Name: it.Source.Name},
			Author:      it.Author,
			Category:    string(category.Detect(it.Title, desc, content)),
		})
	}
	return articles
}
