package news

import (
	"context"
	"sort"
)

// Adapter wraps one upstream news provider. Implementations translate the
// canonical filter criteria into provider-native parameters and map the raw
// response into the canonical Article shape. Errors are returned as-is; the
// aggregator decides how to degrade.
type Adapter interface {
	// Name is the provider's human-readable name.
	Name() string

	// OwnsSource reports whether this provider can serve articles for the
	// given canonical source name. Each source name belongs to exactly one
	// adapter.
	OwnsSource(name string) bool

	// Search queries the provider with the given criteria.
	Search(ctx context.Context, f FilterOptions) ([]Article, error)

	// Headlines performs the provider's default, unscoped request.
	Headlines(ctx context.Context) ([]Article, error)
}

// CanonicalSources lists every source name the pipeline can filter by,
// sorted alphabetically.
func CanonicalSources() []string {
	names := make([]string, 0, len(newsAPISources)+2)
	for name := range newsAPISources {
		names = append(names, name)
	}
	names = append(names, guardianSourceName, nyTimesSourceName)
	sort.Strings(names)
	return names
}
