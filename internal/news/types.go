// Package news talks to the headlines provider and defines the article record the
// rest of newsfeed consumes.
package news

import (
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// articleNamespace seeds the name-based UUIDs used as article keys.
var articleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://newsapi.org/v2/top-headlines"))

// Source identifies the publisher of an article.
type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article is a headline as returned by the provider. Optional fields are empty
// strings when the provider sends null.
type Article struct {
	Source      Source   `json:"source"`
	Author      string   `json:"author,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	URLToImage  string   `json:"urlToImage,omitempty"`
	PublishedAt string   `json:"publishedAt"`
	Content     string   `json:"content,omitempty"`
	Popularity  *float64 `json:"popularity,omitempty"`

	// Category is not sent by the provider; the client stamps the requested one.
	Category string `json:"category,omitempty"`
}

// Key returns a stable identifier derived from title, source and publication time.
// It survives refetches and reordering, unlike the article's position in a list.
func (a Article) Key() string {
	name := a.Title + "\x00" + a.Source.Name + "\x00" + a.PublishedAt
	return uuid.NewSHA1(articleNamespace, []byte(name)).String()
}

// Published parses PublishedAt. Date-only values are read as UTC midnight.
func (a Article) Published() (time.Time, bool) {
	if a.PublishedAt == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(a.PublishedAt, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PublishedMillis returns milliseconds since the Unix epoch, or 0 when unknown.
func (a Article) PublishedMillis() int64 {
	t, ok := a.Published()
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// ContentLength is the character count of Content.
func (a Article) ContentLength() int {
	return utf8.RuneCountInString(a.Content)
}

// Query selects which headlines to fetch.
type Query struct {
	Country  string
	Category string
	SourceID string // provider source id, e.g. "bbc-news"
}

// headlinesResponse is the provider's JSON envelope.
type headlinesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}
