package ranking

import (
	"slices"
	"strings"

	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/news"
)

// ScorerConfig configures the relevance scoring weights
type ScorerConfig struct {
	FeedbackWeight  int64 // Points per net up vote
	QueryMatchBonus int64 // Points when the query appears in title or description
}

// DefaultScorerConfig returns the standard weights.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		FeedbackWeight:  100,
		QueryMatchBonus: 1000,
	}
}

// Breakdown records each signal that went into a relevance score.
type Breakdown struct {
	ContentLength  int64 `json:"content_length"`
	Published      int64 `json:"published"`
	Feedback       int64 `json:"feedback"`
	QueryRelevance int64 `json:"query_relevance"`
	Credibility    int64 `json:"credibility"`
}

// Total sums every signal.
func (b Breakdown) Total() int64 {
	return b.ContentLength + b.Published + b.Feedback + b.QueryRelevance + b.Credibility
}

// ScoredArticle is an article annotated with its relevance score.
type ScoredArticle struct {
	news.Article
	Key            string    `json:"key"`
	RelevanceScore int64     `json:"relevanceScore"`
	Breakdown      Breakdown `json:"breakdown"`
}

// Scorer calculates relevance scores for headlines
type Scorer struct {
	config      ScorerConfig
	credibility CredibilityTable
}

// NewScorer creates a new Scorer with the given configuration
func NewScorer(config ScorerConfig, credibility CredibilityTable) *Scorer {
	return &Scorer{config: config, credibility: credibility}
}

// Credibility exposes the table the scorer consults.
func (s *Scorer) Credibility() CredibilityTable {
	return s.credibility
}

// Explain scores a single article without sorting.
func (s *Scorer) Explain(a news.Article, votes map[string]ledger.Entry, query string) Breakdown {
	b := Breakdown{
		ContentLength: int64(a.ContentLength()),
		Published:     a.PublishedMillis(),
		Credibility:   s.credibility.Score(a.Source.Name),
	}
	if e, ok := votes[a.Key()]; ok {
		b.Feedback = int64(e.Net()) * s.config.FeedbackWeight
	}
	if query != "" && (strings.Contains(a.Title, query) || strings.Contains(a.Description, query)) {
		b.QueryRelevance = s.config.QueryMatchBonus
	}
	return b
}

// Score annotates every article and returns them by descending score. The sort
// is stable, so ties keep their input order.
func (s *Scorer) Score(articles []news.Article, votes map[string]ledger.Entry, query string) []ScoredArticle {
	scored := make([]ScoredArticle, len(articles))
	for i, a := range articles {
		b := s.Explain(a, votes, query)
		scored[i] = ScoredArticle{
			Article:        a,
			Key:            a.Key(),
			RelevanceScore: b.Total(),
			Breakdown:      b,
		}
	}

	slices.SortStableFunc(scored, func(x, y ScoredArticle) int {
		switch {
		case x.RelevanceScore > y.RelevanceScore:
			return -1
		case x.RelevanceScore < y.RelevanceScore:
			return 1
		}
		return 0
	})
	return scored
}
