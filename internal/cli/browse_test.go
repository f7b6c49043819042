package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/newsfeed/internal/config"
	"github.com/vijay-prabhu/newsfeed/internal/feed"
	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/logging"
	"github.com/vijay-prabhu/newsfeed/internal/news"
	"github.com/vijay-prabhu/newsfeed/internal/ranking"
	"github.com/vijay-prabhu/newsfeed/internal/themes"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

type stubSource struct {
	queries []news.Query
}

func (s *stubSource) TopHeadlines(_ context.Context, q news.Query) ([]news.Article, error) {
	s.queries = append(s.queries, q)
	articles := []news.Article{
		{Source: news.Source{Name: "BBC News"}, Title: "Newest story", PublishedAt: "2024-03-01T00:00:00Z", Category: q.Category},
		{Source: news.Source{Name: "BBC News"}, Title: "Middle story", PublishedAt: "2024-02-01T00:00:00Z", Category: q.Category},
		{Source: news.Source{Name: "BBC News"}, Title: "Oldest story", PublishedAt: "2024-01-01T00:00:00Z", Category: q.Category,
			Content: "First line. Second line. Third line."},
	}
	return articles, nil
}

func newTestBrowser(t *testing.T) (*browser, *bytes.Buffer, *stubSource) {
	t.Helper()
	ctx := context.Background()
	src := &stubSource{}
	l := ledger.Open(ctx, &memStore{}, nil)
	credibility := ranking.DefaultCredibility()

	a := &app{
		cfg:         config.Default(),
		log:         logging.NewNop(),
		ledger:      l,
		credibility: credibility,
		hierarchy:   themes.DefaultHierarchy(),
		term:        &Terminal{},
	}
	a.session = feed.NewSession(src, l, ranking.NewScorer(ranking.DefaultScorerConfig(), credibility), feed.Options{
		Country:  "us",
		PageSize: 2,
	})
	a.load(ctx, feed.DefaultFilter())

	var out bytes.Buffer
	return &browser{app: a, out: &out}, &out, src
}

func TestBrowser_Navigation(t *testing.T) {
	b, out, _ := newTestBrowser(t)
	ctx := context.Background()

	assert.False(t, b.exec(ctx, "n"))
	assert.Equal(t, 2, b.app.session.Page().Number)
	assert.Contains(t, out.String(), "Oldest story")

	out.Reset()
	b.exec(ctx, "g 9")
	assert.Equal(t, 2, b.app.session.Page().Number)

	b.exec(ctx, "p")
	assert.Equal(t, 1, b.app.session.Page().Number)

	assert.True(t, b.exec(ctx, "quit"))
}

func TestBrowser_VoteAndShow(t *testing.T) {
	b, out, _ := newTestBrowser(t)
	ctx := context.Background()

	b.exec(ctx, "up 3")
	assert.Contains(t, out.String(), "+1 / -0  Oldest story")

	out.Reset()
	b.exec(ctx, "show 3")
	assert.Contains(t, out.String(), "First line. Second line...")

	out.Reset()
	b.exec(ctx, "up x")
	assert.Contains(t, out.String(), "invalid position")

	out.Reset()
	b.exec(ctx, "down 7")
	assert.Contains(t, out.String(), "position out of range")
}

func TestBrowser_Filters(t *testing.T) {
	b, out, src := newTestBrowser(t)
	ctx := context.Background()

	b.exec(ctx, "cat sports")
	require.Len(t, src.queries, 2)
	assert.Equal(t, "sports", src.queries[1].Category)

	b.exec(ctx, "tag Newest")
	f := b.app.session.Filter()
	assert.Equal(t, feed.All, f.Category)
	assert.Equal(t, "Newest", f.Tag)
	assert.Len(t, b.app.session.View(), 1)

	b.exec(ctx, "tag")
	b.exec(ctx, "sort date")
	assert.Equal(t, feed.SortDate, b.app.session.Filter().Sort)

	out.Reset()
	b.exec(ctx, "sort nope")
	assert.Contains(t, out.String(), "unknown sort option")

	out.Reset()
	b.exec(ctx, "suggest Midd")
	assert.Equal(t, "Middle story\n", out.String())

	out.Reset()
	b.exec(ctx, "bogus")
	assert.Contains(t, out.String(), `Unknown command "bogus"`)
}

func TestBrowser_Run(t *testing.T) {
	b, out, _ := newTestBrowser(t)

	err := b.run(context.Background(), strings.NewReader("help\nquit\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Newest story")
	assert.Contains(t, out.String(), "Trending:   AI, Election")
	assert.Contains(t, out.String(), "show <#>")
}

func TestFilterFlags(t *testing.T) {
	f := filterFlags{sort: "date", category: feed.All, source: "CNN", tag: "AI"}
	state, err := f.state()
	require.NoError(t, err)
	assert.Equal(t, feed.SortDate, state.Sort)
	assert.Equal(t, "AI", state.Tag)

	f.category = "sports"
	_, err = f.state()
	assert.Error(t, err)

	f = filterFlags{sort: "loud"}
	_, err = f.state()
	assert.Error(t, err)
}
