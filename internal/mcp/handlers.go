package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vijay-prabhu/newsfeed/internal/feed"
	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/output"
	"github.com/vijay-prabhu/newsfeed/internal/themes"
)

func (s *Server) registerHandlers() {
	s.handlers["list_articles"] = s.handleListArticles
	s.handlers["suggest_titles"] = s.handleSuggestTitles
	s.handlers["record_feedback"] = s.handleRecordFeedback
	s.handlers["summarize_article"] = s.handleSummarizeArticle
	s.handlers["match_themes"] = s.handleMatchThemes
}

// ensureLoaded fetches headlines once so tools that address articles work
// before the first list_articles call.
func (s *Server) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.opts.Session.Refresh(ctx)
	s.loaded = true
}

type listArticlesParams struct {
	Sort     string `json:"sort"`
	Category string `json:"category"`
	Source   string `json:"source"`
	Tag      string `json:"tag"`
	Query    string `json:"query"`
	Page     int    `json:"page"`
	Refresh  bool   `json:"refresh"`
}

type listArticlesResult struct {
	feed.Page
	Warning string `json:"warning,omitempty"`
}

func (s *Server) handleListArticles(ctx context.Context, params json.RawMessage) (any, error) {
	var p listArticlesParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	if p.Tag != "" && p.Category != "" && p.Category != feed.All {
		return nil, errors.New("tag and category cannot be combined")
	}
	sortOpt, err := feed.ParseSortOption(p.Sort)
	if err != nil {
		return nil, err
	}

	f := feed.FilterState{
		Sort:     sortOpt,
		Category: p.Category,
		Source:   p.Source,
		Query:    p.Query,
	}.WithTag(p.Tag)

	session := s.opts.Session
	refetched := session.SetFilter(ctx, f)
	if !refetched && (!s.loaded || p.Refresh) {
		session.Refresh(ctx)
	}
	s.loaded = true

	if p.Page > 1 {
		// out-of-range pages are ignored like any other bad jump
		session.Jump(strconv.Itoa(p.Page))
	}

	result := listArticlesResult{Page: session.Page()}
	if err := session.Err(); err != nil {
		result.Warning = "headlines could not be fetched: " + err.Error()
	}
	return result, nil
}

type suggestTitlesParams struct {
	Query string `json:"query"`
}

func (s *Server) handleSuggestTitles(ctx context.Context, params json.RawMessage) (any, error) {
	var p suggestTitlesParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	s.ensureLoaded(ctx)
	return output.Suggestions(s.opts.Session.Suggest(p.Query)), nil
}

type recordFeedbackParams struct {
	Article   string `json:"article"`
	Direction string `json:"direction"`
}

func (s *Server) handleRecordFeedback(ctx context.Context, params json.RawMessage) (any, error) {
	var p recordFeedbackParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.Article == "" {
		return nil, fmt.Errorf("article is required")
	}

	dir, err := ledger.ParseDirection(p.Direction)
	if err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)
	a, entry, err := s.opts.Session.Vote(ctx, p.Article, dir)
	if err != nil {
		return nil, err
	}

	return &output.VoteResult{
		Key:       a.Key,
		Title:     a.Title,
		Direction: dir,
		Votes:     entry,
	}, nil
}

type articleParams struct {
	Article string `json:"article"`
}

func (s *Server) handleSummarizeArticle(ctx context.Context, params json.RawMessage) (any, error) {
	var p articleParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.Article == "" {
		return nil, fmt.Errorf("article is required")
	}

	s.ensureLoaded(ctx)
	pos, a, err := s.opts.Session.Resolve(p.Article)
	if err != nil {
		return nil, err
	}
	votes, _ := s.opts.Ledger.Entry(a.Key)

	return output.NewArticleDetail(pos, a, votes, s.opts.Links), nil
}

type matchThemesParams struct {
	Text string `json:"text"`
}

func (s *Server) handleMatchThemes(_ context.Context, params json.RawMessage) (any, error) {
	var p matchThemesParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if strings.TrimSpace(p.Text) == "" {
		return nil, fmt.Errorf("text is required")
	}

	analysis := s.opts.Analyzer.Analyze(p.Text)
	return &output.ThemeReport{
		Text:     p.Text,
		Analysis: analysis,
		Matches:  themes.Match(s.opts.Hierarchy, analysis.Themes),
	}, nil
}

// Resource handlers

func (s *Server) handleReadResource(_ context.Context, uri string) (string, error) {
	switch uri {
	case "newsfeed://credibility":
		return s.getResourceCredibility(), nil
	case "newsfeed://feedback":
		return s.getResourceFeedback(), nil
	case "newsfeed://taxonomy":
		return s.getResourceTaxonomy(), nil
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceCredibility() string {
	var b strings.Builder
	b.WriteString("Source Credibility\n==================\n\n")

	for _, e := range s.opts.Credibility.Entries() {
		fmt.Fprintf(&b, "  - %s: %d\n", e.Source, e.Score)
	}
	fmt.Fprintf(&b, "\nAny other source: %d\n", s.opts.Credibility.Default())
	return b.String()
}

func (s *Server) getResourceFeedback() string {
	var b strings.Builder
	b.WriteString("Feedback Ledger\n===============\n\n")

	records := s.opts.Ledger.Records()
	if len(records) == 0 {
		b.WriteString("No feedback recorded yet.\n")
		return b.String()
	}

	for _, r := range records {
		fmt.Fprintf(&b, "- %s | up %d | down %d | net %+d\n", r.Key, r.Entry.Up, r.Entry.Down, r.Entry.Net())
	}
	return b.String()
}

func (s *Server) getResourceTaxonomy() string {
	var b strings.Builder
	b.WriteString("Theme Taxonomy\n==============\n\n")

	h := s.opts.Hierarchy
	for _, theme := range h.Themes() {
		fmt.Fprintf(&b, "%s:\n", theme)
		for _, sub := range h.SubThemes(theme) {
			fmt.Fprintf(&b, "  %s: %s\n", sub, strings.Join(h[theme][sub], ", "))
		}
	}
	return b.String()
}
