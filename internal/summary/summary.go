// Package summary builds the short article digest and related links shown in
// the article detail view.
package summary

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vijay-prabhu/newsfeed/internal/news"
)

// NoContent is returned when an article has no body to summarize.
const NoContent = "No content available for summarization."

// MaxSentences is how many sentences a summary keeps.
const MaxSentences = 2

var (
	policy         = bluemonday.StrictPolicy()
	truncationMark = regexp.MustCompile(`\s*\[\+\d+ chars\]\s*$`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// Clean strips markup, entities and the provider's truncation marker.
func Clean(text string) string {
	text = policy.Sanitize(text)
	text = html.UnescapeString(text)
	text = truncationMark.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// Summarize keeps the first two sentences of content, adding "..." when more
// were dropped.
func Summarize(content string) string {
	content = Clean(content)
	if content == "" {
		return NoContent
	}
	sentences := strings.Split(content, ". ")
	if len(sentences) <= MaxSentences {
		return content
	}
	return strings.Join(sentences[:MaxSentences], ". ") + "..."
}

// Link is a related resource for an article.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LinkTemplate produces a Link; {query} in URL is replaced with the escaped
// article title.
type LinkTemplate struct {
	Title string `toml:"title" json:"title"`
	URL   string `toml:"url" json:"url"`
}

// DefaultLinkTemplates are used when config provides none.
func DefaultLinkTemplates() []LinkTemplate {
	return []LinkTemplate{
		{Title: "Related Coverage", URL: "https://news.google.com/search?q={query}"},
		{Title: "Historical Data", URL: "https://en.wikipedia.org/w/index.php?search={query}"},
		{Title: "Background Information", URL: "https://duckduckgo.com/?q={query}"},
	}
}

// ContextualLinks expands templates for a.
func ContextualLinks(a news.Article, templates []LinkTemplate) []Link {
	if len(templates) == 0 {
		templates = DefaultLinkTemplates()
	}
	query := url.QueryEscape(Clean(a.Title))
	links := make([]Link, 0, len(templates))
	for _, t := range templates {
		links = append(links, Link{
			Title: t.Title,
			URL:   strings.ReplaceAll(t.URL, "{query}", query),
		})
	}
	return links
}
