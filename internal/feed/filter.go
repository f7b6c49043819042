// Package feed turns a loaded headline list into the filtered, ranked and
// paginated view shown to the user.
package feed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/news"
	"github.com/vijay-prabhu/newsfeed/internal/ranking"
)

// All disables the category or source restriction.
const All = "all"

// SortOption selects the final ordering of the view.
type SortOption string

const (
	SortRelevance  SortOption = "relevance"
	SortDate       SortOption = "date"
	SortPopularity SortOption = "popularity"
)

// SortOptions lists the accepted sort names.
var SortOptions = []SortOption{SortRelevance, SortDate, SortPopularity}

// ParseSortOption validates a sort name. Empty means relevance.
func ParseSortOption(s string) (SortOption, error) {
	if s == "" {
		return SortRelevance, nil
	}
	for _, opt := range SortOptions {
		if string(opt) == s {
			return opt, nil
		}
	}
	return "", fmt.Errorf("unknown sort option %q (use relevance, date or popularity)", s)
}

// FilterState is the user's current selection.
type FilterState struct {
	Sort     SortOption `json:"sort"`
	Category string     `json:"category"`
	Source   string     `json:"source"`
	Tag      string     `json:"tag,omitempty"`
	Query    string     `json:"query,omitempty"`
}

// DefaultFilter shows everything by relevance.
func DefaultFilter() FilterState {
	return FilterState{Sort: SortRelevance, Category: All, Source: All}
}

// WithTag selects a tag and clears the category; the two are exclusive.
func (f FilterState) WithTag(tag string) FilterState {
	f.Tag = tag
	if tag != "" {
		f.Category = All
	}
	return f
}

// WithCategory selects a category and clears the tag.
func (f FilterState) WithCategory(category string) FilterState {
	f.Category = category
	if category != "" && category != All {
		f.Tag = ""
	}
	return f
}

func (f FilterState) categorySelected() bool {
	return f.Category != "" && f.Category != All
}

func (f FilterState) sourceSelected() bool {
	return f.Source != "" && f.Source != All
}

// Matches reports whether a passes the category, source and tag restrictions.
func (f FilterState) Matches(a news.Article) bool {
	if f.categorySelected() && a.Category != f.Category {
		return false
	}
	if f.sourceSelected() && a.Source.Name != f.Source {
		return false
	}
	if f.Tag != "" &&
		!strings.Contains(a.Title, f.Tag) &&
		!strings.Contains(a.Description, f.Tag) &&
		!strings.Contains(a.Content, f.Tag) {
		return false
	}
	return true
}

// Restrict keeps the articles that pass f, in order.
func Restrict(articles []news.Article, f FilterState) []news.Article {
	out := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Build runs the full pipeline: restrict, score, then apply the secondary sort.
func Build(articles []news.Article, votes map[string]ledger.Entry, f FilterState, scorer *ranking.Scorer) []ranking.ScoredArticle {
	scored := scorer.Score(Restrict(articles, f), votes, f.Query)

	switch f.Sort {
	case SortDate:
		slices.SortStableFunc(scored, func(x, y ranking.ScoredArticle) int {
			return compareDesc(x.Breakdown.Published, y.Breakdown.Published)
		})
	case SortPopularity:
		slices.SortStableFunc(scored, func(x, y ranking.ScoredArticle) int {
			return comparePopularity(x.Popularity, y.Popularity)
		})
	}
	return scored
}

func compareDesc(x, y int64) int {
	switch {
	case x > y:
		return -1
	case x < y:
		return 1
	}
	return 0
}

// comparePopularity orders descending; missing values sort last.
func comparePopularity(x, y *float64) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return 1
	case y == nil:
		return -1
	case *x > *y:
		return -1
	case *x < *y:
		return 1
	}
	return 0
}
