package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/news"
	"github.com/vijay-prabhu/newsfeed/internal/ranking"
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

type fakeSource struct {
	mu      sync.Mutex
	queries []news.Query
	respond func(call int, q news.Query) ([]news.Article, error)
}

func (f *fakeSource) TopHeadlines(_ context.Context, q news.Query) ([]news.Article, error) {
	f.mu.Lock()
	call := len(f.queries)
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	return f.respond(call, q)
}

func (f *fakeSource) lastQuery() news.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func staticSource(articles []news.Article) *fakeSource {
	return &fakeSource{respond: func(int, news.Query) ([]news.Article, error) {
		return articles, nil
	}}
}

func newTestSession(t *testing.T, src Source, pageSize int) *Session {
	t.Helper()
	l := ledger.Open(context.Background(), &memStore{}, nil)
	scorer := ranking.NewScorer(ranking.DefaultScorerConfig(), ranking.DefaultCredibility())
	return NewSession(src, l, scorer, Options{
		Country:  "us",
		Sources:  []news.Source{{ID: "bbc-news", Name: "BBC News"}, {ID: "cnn", Name: "CNN"}},
		PageSize: pageSize,
	})
}

func numbered(n int) []news.Article {
	out := make([]news.Article, n)
	for i := range out {
		out[i] = news.Article{
			Source:      news.Source{Name: "CNN"},
			Title:       fmt.Sprintf("Story %03d", i),
			PublishedAt: "2024-01-01T00:00:00Z",
		}
	}
	return out
}

func TestSession_RefreshAndPaginate(t *testing.T) {
	s := newTestSession(t, staticSource(numbered(120)), 50)
	require.True(t, s.Refresh(context.Background()))

	page := s.Page()
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 120, page.Total)
	assert.Len(t, page.Articles, 50)

	assert.False(t, s.Jump("4"))
	assert.Equal(t, 1, s.Page().Number)

	require.True(t, s.Jump("2"))
	page = s.Page()
	assert.Equal(t, 50, page.Offset)
	assert.Len(t, page.Articles, 50)
	assert.Equal(t, "Story 050", page.Articles[0].Title)

	require.True(t, s.Next())
	assert.Len(t, s.Page().Articles, 20)
	assert.False(t, s.Next())
}

func TestSession_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	src := &fakeSource{respond: func(call int, _ news.Query) ([]news.Article, error) {
		if call == 0 {
			close(started)
			<-release
			return []news.Article{{Title: "stale"}}, nil
		}
		return []news.Article{{Title: "fresh"}}, nil
	}}
	s := newTestSession(t, src, 50)

	done := make(chan bool)
	go func() { done <- s.Refresh(context.Background()) }()
	<-started

	require.True(t, s.Refresh(context.Background()))
	close(release)
	assert.False(t, <-done)
	assert.Equal(t, []string{"fresh"}, titles(s.View()))
}

func TestSession_FetchErrorLoadsEmpty(t *testing.T) {
	calls := 0
	src := &fakeSource{respond: func(int, news.Query) ([]news.Article, error) {
		calls++
		if calls == 1 {
			return numbered(3), nil
		}
		return nil, errors.New("boom")
	}}
	s := newTestSession(t, src, 50)

	s.Refresh(context.Background())
	require.Equal(t, 3, s.Loaded())

	assert.True(t, s.Refresh(context.Background()))
	assert.Zero(t, s.Loaded())
	assert.Empty(t, s.Page().Articles)
	assert.Error(t, s.Err())
}

func TestSession_QueryMapping(t *testing.T) {
	src := staticSource(nil)
	s := newTestSession(t, src, 50)
	ctx := context.Background()

	s.Refresh(ctx)
	assert.Equal(t, news.Query{Country: "us"}, src.lastQuery())

	assert.True(t, s.SetFilter(ctx, FilterState{Category: "sports"}))
	assert.Equal(t, news.Query{Country: "us", Category: "sports"}, src.lastQuery())

	s.SetFilter(ctx, FilterState{Source: "BBC News"})
	assert.Equal(t, news.Query{SourceID: "bbc-news"}, src.lastQuery())

	s.SetFilter(ctx, FilterState{Source: "BBC News", Category: "business"})
	assert.Equal(t, news.Query{Country: "us", Category: "business"}, src.lastQuery())
}

func TestSession_SetFilterWithoutRefetch(t *testing.T) {
	src := staticSource(sampleArticles())
	s := newTestSession(t, src, 50)
	ctx := context.Background()
	s.Refresh(ctx)
	require.Equal(t, 1, src.calls())

	assert.False(t, s.SetFilter(ctx, FilterState{Sort: SortDate, Tag: "AI"}))
	assert.Equal(t, 1, src.calls())
	assert.Equal(t, []string{"Tech stocks climb"}, titles(s.View()))
	assert.Equal(t, All, s.Filter().Category)
}

func TestSession_Vote(t *testing.T) {
	articles := []news.Article{
		{Source: news.Source{Name: "CNN"}, Title: "Alpha", PublishedAt: "2024-01-01T00:00:00Z"},
		{Source: news.Source{Name: "CNN"}, Title: "Beta", PublishedAt: "2024-01-01T00:00:00Z"},
	}
	s := newTestSession(t, staticSource(articles), 50)
	ctx := context.Background()
	s.Refresh(ctx)
	require.Equal(t, []string{"Alpha", "Beta"}, titles(s.View()))

	a, entry, err := s.Vote(ctx, "2", ledger.Up)
	require.NoError(t, err)
	assert.Equal(t, "Beta", a.Title)
	assert.Equal(t, ledger.Entry{Up: 1}, entry)
	assert.Equal(t, []string{"Beta", "Alpha"}, titles(s.View()))

	_, _, err = s.Vote(ctx, articles[0].Key(), ledger.Down)
	require.NoError(t, err)

	_, _, err = s.Vote(ctx, "3", ledger.Up)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	_, _, err = s.Vote(ctx, "not-a-key", ledger.Up)
	assert.ErrorIs(t, err, ErrUnknownArticle)
}

func TestSession_Suggest(t *testing.T) {
	s := newTestSession(t, staticSource(sampleArticles()), 50)
	s.Refresh(context.Background())

	assert.Equal(t, []string{"Election results"}, s.Suggest("Elec"))
	assert.Empty(t, s.Suggest("El"))
}

func TestSession_Resolve(t *testing.T) {
	articles := numbered(3)
	s := newTestSession(t, staticSource(articles), 2)
	s.Refresh(context.Background())

	pos, a, err := s.Resolve(articles[2].Key())
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
	assert.Equal(t, "Story 002", a.Title)

	pos, a, err = s.Resolve(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, "Story 000", a.Title)

	_, _, err = s.Resolve("0")
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}
