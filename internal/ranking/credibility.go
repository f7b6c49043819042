// Package ranking computes the additive relevance score used to order headlines.
package ranking

import "sort"

// DefaultCredibilityScore applies to sources missing from the table.
const DefaultCredibilityScore = 500

// CredibilityTable maps a source name to a trust score. The zero value scores
// every source at DefaultCredibilityScore.
type CredibilityTable struct {
	scores       map[string]int64
	defaultScore int64
}

// NewCredibilityTable builds a table from exact source names.
func NewCredibilityTable(scores map[string]int64, defaultScore int64) CredibilityTable {
	copied := make(map[string]int64, len(scores))
	for name, s := range scores {
		copied[name] = s
	}
	return CredibilityTable{scores: copied, defaultScore: defaultScore}
}

// DefaultCredibility returns the built-in source table.
func DefaultCredibility() CredibilityTable {
	return NewCredibilityTable(DefaultCredibilityScores(), DefaultCredibilityScore)
}

// DefaultCredibilityScores lists the built-in per-source scores.
func DefaultCredibilityScores() map[string]int64 {
	return map[string]int64{
		"BBC News":           1000,
		"CNN":                900,
		"Fox News":           800,
		"The New York Times": 950,
		"The Guardian":       920,
	}
}

// Score looks up name exactly (case-sensitive).
func (t CredibilityTable) Score(name string) int64 {
	if s, ok := t.scores[name]; ok {
		return s
	}
	return t.Default()
}

// Default is the score for unknown sources.
func (t CredibilityTable) Default() int64 {
	if t.scores == nil && t.defaultScore == 0 {
		return DefaultCredibilityScore
	}
	return t.defaultScore
}

// SourceScore is one row of the table.
type SourceScore struct {
	Source string `json:"source"`
	Score  int64  `json:"score"`
}

// Entries lists the table, highest score first.
func (t CredibilityTable) Entries() []SourceScore {
	out := make([]SourceScore, 0, len(t.scores))
	for name, s := range t.scores {
		out = append(out, SourceScore{Source: name, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Source < out[j].Source
	})
	return out
}
