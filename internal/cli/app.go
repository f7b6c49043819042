package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/config"
	"github.com/vijay-prabhu/newsfeed/internal/database"
	"github.com/vijay-prabhu/newsfeed/internal/feed"
	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/logging"
	"github.com/vijay-prabhu/newsfeed/internal/news"
	"github.com/vijay-prabhu/newsfeed/internal/ranking"
	"github.com/vijay-prabhu/newsfeed/internal/summary"
	"github.com/vijay-prabhu/newsfeed/internal/themes"
)

// app holds the components every command shares
type app struct {
	cfg         *config.Config
	log         logging.Logger
	db          *database.DB
	ledger      *ledger.Ledger
	credibility ranking.CredibilityTable
	session     *feed.Session
	hierarchy   themes.Hierarchy
	links       []summary.LinkTemplate
	term        *Terminal
}

// newApp loads configuration and opens the store. Callers must Close it.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		if !logging.ValidLevel(logLevel) {
			return nil, fmt.Errorf("invalid --log-level %q", logLevel)
		}
		cfg.Log.Level = logLevel
	}

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &app{
		cfg:         cfg,
		log:         log,
		db:          db,
		ledger:      ledger.Open(ctx, db, log),
		credibility: ranking.NewCredibilityTable(cfg.Credibility.Scores, cfg.Credibility.Default),
		hierarchy:   themes.DefaultHierarchy(),
		term:        NewTerminal(),
	}
	if len(cfg.Themes.Hierarchy) > 0 {
		a.hierarchy = themes.Hierarchy(cfg.Themes.Hierarchy).Clone()
	}
	for _, l := range cfg.Summary.Links {
		a.links = append(a.links, summary.LinkTemplate{Title: l.Title, URL: l.URL})
	}

	client := news.New(news.Options{
		BaseURL:           cfg.NewsAPI.BaseURL,
		APIKey:            cfg.NewsAPI.APIKey,
		PageSize:          cfg.NewsAPI.PageSize,
		Timeout:           cfg.NewsAPI.Timeout(),
		RequestsPerMinute: cfg.NewsAPI.RequestsPerMinute,
		CacheSize:         cfg.NewsAPI.CacheSize,
		CacheTTL:          cfg.NewsAPI.CacheTTL(),
		Logger:            log,
	})
	scorer := ranking.NewScorer(ranking.DefaultScorerConfig(), a.credibility)
	a.session = feed.NewSession(client, a.ledger, scorer, feed.Options{
		Country:        cfg.NewsAPI.Country,
		Sources:        a.sources(),
		PageSize:       cfg.Feed.PageSize,
		MaxSuggestions: cfg.Feed.MaxSuggestions,
		Logger:         log,
	})

	return a, nil
}

// Close flushes logs and closes the store
func (a *app) Close() {
	_ = a.log.Sync()
	a.db.Close()
}

func (a *app) sources() []news.Source {
	out := make([]news.Source, 0, len(a.cfg.Feed.Sources))
	for _, s := range a.cfg.Feed.Sources {
		out = append(out, news.Source{ID: s.ID, Name: s.Name})
	}
	return out
}

// load applies f and makes sure headlines have been fetched at least once
func (a *app) load(ctx context.Context, f feed.FilterState) {
	stop := a.term.Spin("Fetching headlines...")
	defer stop()
	if !a.session.SetFilter(ctx, f) {
		a.session.Refresh(ctx)
	}
}

// filterFlags are the view flags shared by commands that address articles by position
type filterFlags struct {
	sort     string
	category string
	source   string
	tag      string
	query    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sort, "sort", "relevance", "sort order (relevance, date, popularity)")
	cmd.Flags().StringVar(&f.category, "category", feed.All, "category filter")
	cmd.Flags().StringVar(&f.source, "source", feed.All, "source name filter, e.g. \"BBC News\"")
	cmd.Flags().StringVar(&f.tag, "tag", "", "trending tag filter (cannot be combined with --category)")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "search text")
}

func (f *filterFlags) state() (feed.FilterState, error) {
	sortOpt, err := feed.ParseSortOption(f.sort)
	if err != nil {
		return feed.FilterState{}, err
	}
	if f.tag != "" && f.category != "" && f.category != feed.All {
		return feed.FilterState{}, errors.New("--tag and --category cannot be combined")
	}
	return feed.FilterState{
		Sort:     sortOpt,
		Category: f.category,
		Source:   f.source,
		Query:    f.query,
	}.WithTag(f.tag), nil
}

// parsePosition reads a 1-based position argument
func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil || pos < 1 {
		return 0, fmt.Errorf("invalid position %q: must be a positive number", arg)
	}
	return pos, nil
}
