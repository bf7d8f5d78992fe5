// newsctl — terminal client for the news aggregation pipeline.
//
// Usage:
//
//	newsctl search golang --category technology
//	newsctl headlines
//	newsctl prefs list
//	newsctl saved add <article-id>
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aliraza019-js/news-aggregator-by-ali/internal/config"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/news"
	"github.com/aliraza019-js/news-aggregator-by-ali/internal/prefs"
	"github.com/aliraza019-js/news-aggregator-by-ali/pkg/storage"
)

// localUserID is the account all newsctl state belongs to. The CLI is a
// single-user tool; multi-user accounts live behind the REST API.
const localUserID int64 = 1

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "newsctl",
		Short: "Search and browse news from NewsAPI, The Guardian and The New York Times",
	}

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(headlinesCmd())
	rootCmd.AddCommand(prefsCmd())
	rootCmd.AddCommand(savedCmd())
	rootCmd.AddCommand(sourcesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func searchCmd() *cobra.Command {
	var (
		categoryFlag string
		sourceFlag   string
		fromFlag     string
		toFlag       string
		sortFlag     string
		rawFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search all providers with optional filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keyword string
			if len(args) > 0 {
				keyword = args[0]
			}
			opts := news.FilterOptions{
				Keyword:  keyword,
				Category: categoryFlag,
				Source:   sourceFlag,
				DateFrom: fromFlag,
				DateTo:   toFlag,
				SortBy:   news.SortBy(sortFlag),
			}
			return runSearch(opts, rawFlag)
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "filter by category (e.g. technology)")
	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "filter by source name (e.g. \"The Guardian\")")
	cmd.Flags().StringVar(&fromFlag, "from", "", "only articles published on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "only articles published on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort order requested from providers (publishedAt, relevancy, popularity)")
	cmd.Flags().BoolVar(&rawFlag, "no-prefs", false, "skip preference filtering")
	return cmd
}

func headlinesCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "Show the personalized top headlines feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadlines(rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "no-prefs", false, "skip preference filtering")
	return cmd
}

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage preferred sources, categories and authors",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefsList()
		},
	}

	add := &cobra.Command{
		Use:   "add <source|category|author> <value>",
		Short: "Add a preference value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefsAdd(prefs.Dimension(args[0]), args[1])
		},
	}

	remove := &cobra.Command{
		Use:   "remove <source|category|author> <value>",
		Short: "Remove a preference value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefsRemove(prefs.Dimension(args[0]), args[1])
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func savedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage the saved-article list",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show saved article IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedList()
		},
	}

	add := &cobra.Command{
		Use:   "add <article-id>",
		Short: "Save an article by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedAdd(args[0])
		},
	}

	remove := &cobra.Command{
		Use:   "remove <article-id>",
		Short: "Remove an article from the saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedRemove(args[0])
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the source names the pipeline can filter by",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range news.CanonicalSources() {
				fmt.Println(name)
			}
		},
	}
}

// --- Command implementations ---

func runSearch(opts news.FilterOptions, skipPrefs bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, aggregator, err := loadAggregator()
	if err != nil {
		return err
	}

	articles := aggregator.SearchAllSources(ctx, opts)
	if !skipPrefs {
		articles, err = applyStoredPreferences(ctx, cfg, articles)
		if err != nil {
			return err
		}
	}
	articles = news.ApplyFilters(articles, opts)

	printArticles(articles)
	return nil
}

func runHeadlines(skipPrefs bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, aggregator, err := loadAggregator()
	if err != nil {
		return err
	}

	articles := aggregator.TopHeadlines(ctx)
	if !skipPrefs {
		articles, err = applyStoredPreferences(ctx, cfg, articles)
		if err != nil {
			return err
		}
	}

	printArticles(articles)
	return nil
}

func runPrefsList() error {
	ctx := context.Background()
	store, closeDB, err := openPrefsStore(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	p, err := store.Get(ctx, localUserID)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	fmt.Println("Sources:    " + joinOrNone(p.PreferredSources))
	fmt.Println("Categories: " + joinOrNone(p.PreferredCategories))
	fmt.Println("Authors:    " + joinOrNone(p.PreferredAuthors))
	return nil
}

func runPrefsAdd(dim prefs.Dimension, value string) error {
	ctx := context.Background()
	store, closeDB, err := openPrefsStore(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := store.Add(ctx, localUserID, dim, value); err != nil {
		return err
	}
	fmt.Printf("Added %q to %s\n", value, dim)
	return nil
}

func runPrefsRemove(dim prefs.Dimension, value string) error {
	ctx := context.Background()
	store, closeDB, err := openPrefsStore(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := store.Remove(ctx, localUserID, dim, value); err != nil {
		return err
	}
	fmt.Printf("Removed %q from %s\n", value, dim)
	return nil
}

func runSavedList() error {
	ctx := context.Background()
	store, closeDB, err := openPrefsStore(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	ids, err := store.SavedArticles(ctx, localUserID)
	if err != nil {
		return fmt.Errorf("load saved articles: %w", err)
	}
	if len(ids) == 0 {
		fmt.Println("No saved articles.")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runSavedAdd(articleID string) error {
	ctx := context.Background()
	store, closeDB, err := openPrefsStore(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := store.SaveArticle(ctx, localUserID, articleID); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", articleID)
	return nil
}

func runSavedRemove(articleID string) error {
	ctx := context.Background()
	store, closeDB, err := openPrefsStore(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := store.UnsaveArticle(ctx, localUserID, articleID); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", articleID)
	return nil
}

// --- Wiring helpers ---

func loadConfig() (*config.Config, error) {
	cfgPath := os.Getenv("NEWS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func loadAggregator() (*config.Config, *news.Aggregator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var adapters []news.Adapter
	if cfg.NewsAPI.APIKey != "" {
		adapters = append(adapters, news.NewNewsAPI(cfg.NewsAPI.BaseURL, cfg.NewsAPI.APIKey))
	}
	if cfg.Guardian.APIKey != "" {
		adapters = append(adapters, news.NewGuardian(cfg.Guardian.BaseURL, cfg.Guardian.APIKey))
	}
	if cfg.NYTimes.APIKey != "" {
		adapters = append(adapters, news.NewNYTimes(cfg.NYTimes.BaseURL, cfg.NYTimes.APIKey))
	}
	if len(adapters) == 0 {
		return nil, nil, fmt.Errorf("no provider API keys configured (set NEWSAPI_KEY, GUARDIAN_KEY or NYTIMES_KEY)")
	}

	return cfg, news.NewAggregator(adapters...), nil
}

func openPrefsStore(ctx context.Context) (*prefs.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, prefs.Schema); err != nil {
		db.Close()
		return nil, nil, err
	}
	return prefs.NewStore(db), func() { db.Close() }, nil
}

func applyStoredPreferences(ctx context.Context, cfg *config.Config, articles []news.Article) ([]news.Article, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.Migrate(ctx, prefs.Schema); err != nil {
		return nil, err
	}

	p, err := prefs.NewStore(db).Get(ctx, localUserID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return news.ApplyPreferences(articles, p), nil
}

// --- Output ---

func printArticles(articles []news.Article) {
	if len(articles) == 0 {
		fmt.Println("No articles found.")
		return
	}

	for _, a := range articles {
		fmt.Printf("%s  [%s]  %s\n", a.PublishedAt.Format("Jan 02, 2006"), a.Source.Name, a.Title)
		if a.Description != "" {
			fmt.Printf("    %s\n", truncate(a.Description, 120))
		}
		fmt.Printf("    %s\n", a.URL)
		fmt.Printf("    id: %s\n\n", a.ID)
	}
	fmt.Printf("%d article(s)\n", len(articles))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
