package feed

import (
	"strings"
	"unicode/utf8"

	"github.com/vijay-prabhu/newsfeed/internal/news"
)

// MinSuggestLength is the shortest query that produces suggestions.
const MinSuggestLength = 3

// Suggest returns titles containing query, case-sensitive and in list order.
// Queries shorter than MinSuggestLength yield nothing. limit <= 0 means no cap.
func Suggest(articles []news.Article, query string, limit int) []string {
	suggestions := []string{}
	if utf8.RuneCountInString(query) < MinSuggestLength {
		return suggestions
	}
	for _, a := range articles {
		if strings.Contains(a.Title, query) {
			suggestions = append(suggestions, a.Title)
			if limit > 0 && len(suggestions) == limit {
				break
			}
		}
	}
	return suggestions
}
