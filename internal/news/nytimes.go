package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/category"
)

const nyTimesSourceName = "The New York Times"

// NYTimes adapts the New York Times article search API.
type NYTimes struct {
	baseURL string
	apiKey  string
	client  httpDoer
}

// NewNYTimes creates a NYTimes adapter against the given base URL.
func NewNYTimes(baseURL, apiKey string) *NYTimes {
	return &NYTimes{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (n *NYTimes) Name() string { return nyTimesSourceName }

func (n *NYTimes) OwnsSource(name string) bool { return name == nyTimesSourceName }

type nyTimesResponse struct {
	Status   string `json:"status"`
	Response struct {
		Docs []nyTimesDoc `json:"docs"`
		Meta struct {
			Hits int `json:"hits"`
		} `json:"meta"`
	} `json:"response"`
}

type nyTimesDoc struct {
	ID       string `json:"_id"`
	Headline struct {
		Main string `json:"main"`
	} `json:"headline"`
	Abstract      string `json:"abstract"`
	LeadParagraph string `json:"lead_paragraph"`
	WebURL        string `json:"web_url"`
	PubDate       string `json:"pub_date"`
	Byline        struct {
		Original string `json:"original"`
	} `json:"byline"`
	Multimedia []struct {
		URL     string `json:"url"`
		Subtype string `json:"subtype"`
	} `json:"multimedia"`
	SectionName string `json:"section_name"`
}

func (n *NYTimes) Search(ctx context.Context, f FilterOptions) ([]Article, error) {
	params := url.Values{}
	if f.Keyword != "" {
		params.Set("q", f.Keyword)
	}
	if f.Category != "" {
		mapped := category.MapForProvider(f.Category, category.ProviderNYTimes)
		params.Set("fq", fmt.Sprintf("section_name:(%q)", mapped))
	}
	if f.DateFrom != "" {
		params.Set("begin_date", strings.ReplaceAll(f.DateFrom, "-", ""))
	}
	if f.DateTo != "" {
		params.Set("end_date", strings.ReplaceAll(f.DateTo, "-", ""))
	}
	params.Set("sort", nyTimesSort(f.SortBy))
	return n.query(ctx, params)
}

func (n *NYTimes) Headlines(ctx context.Context) ([]Article, error) {
	return n.query(ctx, url.Values{"sort": {"newest"}})
}

func nyTimesSort(s SortBy) string {
	if s == SortPublishedAt {
		return "newest"
	}
	return "relevance"
}

func (n *NYTimes) query(ctx context.Context, params url.Values) ([]Article, error) {
	params.Set("api-key", n.apiKey)

	var resp nyTimesResponse
	if err := getJSON(ctx, n.client, n.baseURL, "/search/v2/articlesearch.json", params, &resp); err != nil {
		return nil, err
	}
	return n.transform(resp.Response.Docs), nil
}

// transform maps raw NYTimes docs onto the canonical shape, keeping the
// provider's stable _id.
func (n *NYTimes) transform(docs []nyTimesDoc) []Article {
	articles := make([]Article, 0, len(docs))
	for _, d := range docs {
		cat := strings.ToLower(d.SectionName)
		if !category.IsValid(cat) {
			cat = string(category.Detect(d.Headline.Main, d.Abstract, d.LeadParagraph))
		}

		articles = append(articles, Article{
			ID:          d.ID,
			Title:       d.Headline.Main,
			Description: d.Abstract,
			Content:     d.LeadParagraph,
			URL:         d.WebURL,
			ImageURL:    n.imageURL(d),
			PublishedAt: parseTimestamp(d.PubDate),
			Source:      Source{ID: "nytimes", Name: nyTimesSourceName},
			Author:      d.Byline.Original,
			Category:    cat,
		})
	}
	return articles
}

func (n *NYTimes) imageURL(d nyTimesDoc) string {
	for _, m := range d.Multimedia {
		if m.Subtype == "thumbnail" {
			return "https://www.nytimes.com/" + m.URL
		}
	}
	return ""
}
