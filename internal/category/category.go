// Package category classifies article text into a fixed set of canonical
// topic tags and translates those tags into each provider's own vocabulary.
package category

import "strings"

// Category is a canonical topic tag.
type Category string

const (
	Sports        Category = "sports"
	Technology    Category = "technology"
	Business      Category = "business"
	Science       Category = "science"
	Health        Category = "health"
	Entertainment Category = "entertainment"
	Politics      Category = "politics"
	World         Category = "world"
	General       Category = "general"
)

// All returns the classifiable categories in match-priority order. Detect
// checks them in this order and the first hit wins, so the order is part of
// the classifier's behavior and must not be rearranged.
func All() []Category {
	return []Category{Sports, Technology, Business, Science, Health, Entertainment, Politics, World}
}

var keywords = map[Category][]string{
	Sports: {
		"sport", "football", "basketball", "tennis", "soccer", "baseball",
		"nfl", "nba", "mlb", "championship", "tournament", "game", "match",
		"player", "team", "coach", "athlete", "olympics", "world cup",
	},
	Technology: {
		"tech", "technology", "digital", "software", "app", "ai",
		"artificial intelligence", "machine learning", "startup", "innovation",
		"computer", "internet", "cyber", "data", "algorithm",
	},
	Business: {
		"business", "economy", "financial", "market", "stock", "investment",
		"company", "corporate", "profit", "revenue", "ceo", "entrepreneur",
		"startup", "venture", "funding",
	},
	Science: {
		"science", "scientific", "research", "study", "discovery",
		"experiment", "laboratory", "scientist", "physics", "chemistry",
		"biology", "medicine", "medical",
	},
	Health: {
		"health", "medical", "medicine", "doctor", "hospital", "patient",
		"treatment", "disease", "vaccine", "covid", "pandemic", "wellness",
		"fitness",
	},
	Entertainment: {
		"entertainment", "movie", "film", "music", "celebrity", "actor",
		"actress", "hollywood", "award", "concert", "performance", "artist",
	},
	Politics: {
		"politics", "political", "government", "election", "president",
		"congress", "senate", "democrat", "republican", "policy", "law",
		"legislation",
	},
	World: {
		"world", "international", "global", "foreign", "country", "nation",
		"diplomacy", "embassy", "treaty", "alliance",
	},
}

// Detect classifies free text by substring keyword matching over the
// concatenated title, description and content. The first category (in All
// order) with any keyword hit wins. Text with no hits is General.
func Detect(title, description, content string) Category {
	text := strings.ToLower(title + " " + description + " " + content)

	for _, cat := range All() {
		for _, kw := range keywords[cat] {
			if strings.Contains(text, kw) {
				return cat
			}
		}
	}
	return General
}

// Provider identifies one upstream news API's category vocabulary.
type Provider string

const (
	ProviderNewsAPI  Provider = "newsapi"
	ProviderGuardian Provider = "guardian"
	ProviderNYTimes  Provider = "nytimes"
)

var providerVocabulary = map[Category]map[Provider]string{
	Technology:    {ProviderNewsAPI: "technology", ProviderGuardian: "technology", ProviderNYTimes: "technology"},
	Business:      {ProviderNewsAPI: "business", ProviderGuardian: "business", ProviderNYTimes: "business"},
	Science:       {ProviderNewsAPI: "science", ProviderGuardian: "science", ProviderNYTimes: "science"},
	Health:        {ProviderNewsAPI: "health", ProviderGuardian: "health", ProviderNYTimes: "health"},
	Sports:        {ProviderNewsAPI: "sports", ProviderGuardian: "sport", ProviderNYTimes: "sports"},
	Entertainment: {ProviderNewsAPI: "entertainment", ProviderGuardian: "culture", ProviderNYTimes: "arts"},
	Politics:      {ProviderNewsAPI: "politics", ProviderGuardian: "politics", ProviderNYTimes: "politics"},
	World:         {ProviderNewsAPI: "general", ProviderGuardian: "world", ProviderNYTimes: "world"},
	General:       {ProviderNewsAPI: "general", ProviderGuardian: "news", ProviderNYTimes: "news"},
}

// MapForProvider translates a canonical category into the given provider's
// vocabulary. Unknown categories pass through unchanged.
func MapForProvider(cat string, p Provider) string {
	if vocab, ok := providerVocabulary[Category(strings.ToLower(cat))]; ok {
		return vocab[p]
	}
	return cat
}

// IsValid reports whether the string names a classifiable category.
func IsValid(cat string) bool {
	_, ok := keywords[Category(strings.ToLower(cat))]
	return ok
}

// DisplayName renders a category tag for display ("technology" -> "Technology").
func DisplayName(cat string) string {
	if cat == "" {
		return ""
	}
	return strings.ToUpper(cat[:1]) + cat[1:]
}
