package themes

import (
	"slices"
	"strings"
	"unicode"
)

// Analysis is the output of query analysis.
type Analysis struct {
	Topics []string `json:"topics"`
	Themes []string `json:"themes"`
}

// Analyzer extracts topics and candidate theme nouns from free text.
type Analyzer interface {
	Analyze(text string) Analysis
}

var defaultStopwords = []string{
	"a", "about", "after", "all", "an", "and", "are", "as", "at", "be", "been", "but", "by",
	"can", "did", "do", "does", "for", "from", "had", "has", "have", "how", "i", "if", "in",
	"into", "is", "it", "its", "me", "my", "new", "news", "no", "not", "of", "on", "or",
	"our", "over", "say", "says", "she", "he", "so", "than", "that", "the", "their", "them",
	"then", "there", "these", "they", "this", "to", "up", "was", "we", "were", "what",
	"when", "where", "which", "who", "why", "will", "with", "you", "your",
}

// KeywordAnalyzer is a dictionary tokenizer. Capitalized words after the first
// are reported as topics; every other non-stopword is a theme candidate, and
// adjacent pairs that form a known phrase are added as well.
type KeywordAnalyzer struct {
	stopwords map[string]struct{}
	phrases   map[string]struct{}
}

// NewKeywordAnalyzer builds an analyzer that recognises the multi-word names in h.
func NewKeywordAnalyzer(h Hierarchy) *KeywordAnalyzer {
	a := &KeywordAnalyzer{
		stopwords: make(map[string]struct{}, len(defaultStopwords)),
		phrases:   make(map[string]struct{}),
	}
	for _, w := range defaultStopwords {
		a.stopwords[w] = struct{}{}
	}
	for _, p := range h.Phrases() {
		a.phrases[p] = struct{}{}
	}
	return a
}

// Analyze implements Analyzer.
func (a *KeywordAnalyzer) Analyze(text string) Analysis {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	analysis := Analysis{Topics: []string{}, Themes: []string{}}
	prev := ""
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		if _, stop := a.stopwords[lower]; stop {
			prev = ""
			continue
		}
		if i > 0 && startsUpper(tok) && !slices.Contains(analysis.Topics, tok) {
			analysis.Topics = append(analysis.Topics, tok)
		}
		if prev != "" {
			pair := prev + " " + lower
			if _, ok := a.phrases[pair]; ok && !slices.Contains(analysis.Themes, pair) {
				analysis.Themes = append(analysis.Themes, pair)
			}
		}
		if !slices.Contains(analysis.Themes, lower) {
			analysis.Themes = append(analysis.Themes, lower)
		}
		prev = lower
	}
	return analysis
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
