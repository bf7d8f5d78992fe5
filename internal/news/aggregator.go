package news

import (
	"context"
	"log/slog"
	"sort"
)

// Outcome reports how one adapter fared during a fan-out. A non-nil Err
// means the adapter degraded to an empty contribution rather than failing
// the request.
type Outcome struct {
	Adapter  string
	Articles int
	Err      error
}

// Degraded reports whether the adapter's contribution was lost to an
// absorbed failure.
func (o Outcome) Degraded() bool { return o.Err != nil }

// Aggregator fans a request out to the relevant provider adapters, merges
// their results and removes cross-provider duplicates. It never fails: a
// total outage across every adapter yields an empty list.
type Aggregator struct {
	adapters []Adapter
	logger   *slog.Logger
}

// NewAggregator creates an Aggregator over the given adapters. Merge order
// follows registration order.
func NewAggregator(adapters ...Adapter) *Aggregator {
	return &Aggregator{adapters: adapters, logger: slog.Default()}
}

// SearchAllSources queries every adapter relevant to the criteria and
// returns the merged, deduplicated result. Ordering is left to the query
// filter.
func (a *Aggregator) SearchAllSources(ctx context.Context, f FilterOptions) []Article {
	articles, _ := a.SearchAllSourcesReport(ctx, f)
	return articles
}

// SearchAllSourcesReport is SearchAllSources plus per-adapter outcomes, so
// callers can surface partial-outage diagnostics without changing the
// merged list.
func (a *Aggregator) SearchAllSourcesReport(ctx context.Context, f FilterOptions) ([]Article, []Outcome) {
	selected := a.selectAdapters(f.Source)
	batches, outcomes := a.fanOut(selected, func(ad Adapter) ([]Article, error) {
		return ad.Search(ctx, f)
	})
	return deduplicate(batches), outcomes
}

// TopHeadlines runs the same pipeline with each adapter's default request
// and no query filter, sorting the merged result newest-first as its own
// terminal step.
func (a *Aggregator) TopHeadlines(ctx context.Context) []Article {
	batches, _ := a.fanOut(a.adapters, func(ad Adapter) ([]Article, error) {
		return ad.Headlines(ctx)
	})
	articles := deduplicate(batches)
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}

// selectAdapters returns the adapters to invoke. An empty source means all
// of them; a source name no adapter owns selects none, which yields an
// empty result rather than an error.
func (a *Aggregator) selectAdapters(source string) []Adapter {
	if source == "" {
		return a.adapters
	}
	var owned []Adapter
	for _, ad := range a.adapters {
		if ad.OwnsSource(source) {
			owned = append(owned, ad)
		}
	}
	return owned
}

// fanOut invokes each adapter concurrently and waits for every one to
// settle before returning. Failures are absorbed: the adapter's batch stays
// empty, the error lands in its outcome and a warning is logged. Batches
// come back in adapter order so the merge is deterministic.
func (a *Aggregator) fanOut(adapters []Adapter, call func(Adapter) ([]Article, error)) ([][]Article, []Outcome) {
	type result struct {
		pos      int
		articles []Article
		err      error
	}

	ch := make(chan result, len(adapters))
	for i, ad := range adapters {
		go func(pos int, ad Adapter) {
			articles, err := call(ad)
			ch <- result{pos: pos, articles: articles, err: err}
		}(i, ad)
	}

	batches := make([][]Article, len(adapters))
	outcomes := make([]Outcome, len(adapters))
	for range adapters {
		r := <-ch
		name := adapters[r.pos].Name()
		if r.err != nil {
			a.logger.Warn("adapter degraded to empty result", "adapter", name, "error", r.err)
			r.articles = nil
		}
		batches[r.pos] = r.articles
		outcomes[r.pos] = Outcome{Adapter: name, Articles: len(r.articles), Err: r.err}
	}
	return batches, outcomes
}

// deduplicate concatenates the batches in adapter order and drops every
// article whose (title, source name) pair was already seen. First
// occurrence wins; relative order is preserved.
func deduplicate(batches [][]Article) []Article {
	seen := make(map[[2]string]struct{})
	var merged []Article
	for _, batch := range batches {
		for _, a := range batch {
			key := [2]string{a.Title, a.Source.Name}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, a)
		}
	}
	return merged
}
