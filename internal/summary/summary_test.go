package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vijay-prabhu/newsfeed/internal/news"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", NoContent},
		{"markup only", "<p></p>", NoContent},
		{"one sentence", "Markets rose today.", "Markets rose today."},
		{"two sentences", "Markets rose. Bonds fell.", "Markets rose. Bonds fell."},
		{"three sentences", "Markets rose. Bonds fell. Oil was flat.", "Markets rose. Bonds fell..."},
		{"strips html", "<p>Markets <b>rose</b>. Bonds fell.</p>", "Markets rose. Bonds fell."},
		{"strips truncation marker", "Markets rose. Bonds fell [+1234 chars]", "Markets rose. Bonds fell"},
		{"unescapes entities", "Q&amp;A session", "Q&A session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.content))
		})
	}
}

func TestContextualLinks(t *testing.T) {
	a := news.Article{Title: "Election results & reaction"}

	links := ContextualLinks(a, nil)
	assert.Len(t, links, 3)
	assert.Equal(t, "Related Coverage", links[0].Title)
	assert.Equal(t, "https://news.google.com/search?q=Election+results+%26+reaction", links[0].URL)

	custom := ContextualLinks(a, []LinkTemplate{{Title: "Search", URL: "https://example.com/?q={query}"}})
	assert.Equal(t, []Link{{Title: "Search", URL: "https://example.com/?q=Election+results+%26+reaction"}}, custom)
}
