package feed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/logging"
	"github.com/vijay-prabhu/newsfeed/internal/news"
	"github.com/vijay-prabhu/newsfeed/internal/ranking"
)

var (
	// ErrPositionOutOfRange is returned when a position does not name a row of the view.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrUnknownArticle is returned for a key that is not in the loaded set.
	ErrUnknownArticle = errors.New("unknown article")
)

// Source fetches raw headlines. *news.Client satisfies it.
type Source interface {
	TopHeadlines(ctx context.Context, q news.Query) ([]news.Article, error)
}

// Options configures a Session.
type Options struct {
	Country        string
	Sources        []news.Source // selectable sources; name is shown, id is fetched
	PageSize       int
	MaxSuggestions int
	Logger         logging.Logger
}

// Page is one rendered slice of the view. Positions are 1-based across the
// whole view, so Offset+i+1 is the position of Articles[i].
type Page struct {
	Number     int                     `json:"page"`
	TotalPages int                     `json:"totalPages"`
	PageSize   int                     `json:"pageSize"`
	Total      int                     `json:"total"`
	Offset     int                     `json:"offset"`
	Filter     FilterState             `json:"filter"`
	Articles   []ranking.ScoredArticle `json:"articles"`
}

// Session owns the loaded headlines, the filter state and the pager. It is safe
// for concurrent use; fetches run outside the lock and only the most recently
// issued refresh may replace the loaded set.
type Session struct {
	source Source
	ledger *ledger.Ledger
	scorer *ranking.Scorer
	opts   Options
	log    logging.Logger

	mu       sync.Mutex
	filter   FilterState
	articles []news.Article
	view     []ranking.ScoredArticle
	pager    *Pager
	issued   uint64
	lastErr  error
}

// NewSession creates an empty session. Call Refresh to load headlines.
func NewSession(source Source, l *ledger.Ledger, scorer *ranking.Scorer, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	return &Session{
		source: source,
		ledger: l,
		scorer: scorer,
		opts:   opts,
		log:    log.With(logging.String("component", "feed")),
		filter: DefaultFilter(),
		pager:  NewPager(opts.PageSize),
	}
}

// Refresh fetches headlines for the current filter. A failed fetch is logged
// and loads an empty list. It reports whether the response was applied; a
// response overtaken by a later Refresh is discarded.
func (s *Session) Refresh(ctx context.Context) bool {
	s.mu.Lock()
	s.issued++
	token := s.issued
	q := s.queryLocked()
	s.mu.Unlock()

	articles, err := s.source.TopHeadlines(ctx, q)
	if err != nil {
		s.log.Warn("failed to fetch headlines",
			logging.String("country", q.Country),
			logging.String("category", q.Category),
			logging.String("source", q.SourceID),
			logging.Err(err))
		articles = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.issued {
		s.log.Debug("discarding stale headlines response",
			logging.Uint64("token", token),
			logging.Uint64("latest", s.issued))
		return false
	}
	s.articles = articles
	s.lastErr = err
	s.rebuildLocked()
	s.log.Debug("headlines loaded", logging.Int("count", len(articles)), logging.Uint64("token", token))
	return true
}

// Err is the error from the last applied fetch, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// queryLocked maps the filter onto a headlines request. NewsAPI refuses a
// source together with country or category, so a source is fetched by id only
// when no category is selected; otherwise it is filtered locally by name.
func (s *Session) queryLocked() news.Query {
	if s.filter.sourceSelected() && !s.filter.categorySelected() {
		if id := s.sourceID(s.filter.Source); id != "" {
			return news.Query{SourceID: id}
		}
	}
	q := news.Query{Country: s.opts.Country}
	if s.filter.categorySelected() {
		q.Category = s.filter.Category
	}
	return q
}

func (s *Session) sourceID(name string) string {
	for _, src := range s.opts.Sources {
		if src.Name == name {
			return src.ID
		}
	}
	return ""
}

func (s *Session) rebuildLocked() {
	s.view = Build(s.articles, s.ledger.Snapshot(), s.filter, s.scorer)
	s.pager.SetTotal(len(s.view))
}

// Filter returns the current filter state.
func (s *Session) Filter() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter replaces the filter and returns to page 1. It refetches when the
// category or source changed, otherwise it only rebuilds the view. It reports
// whether a fetch was made.
func (s *Session) SetFilter(ctx context.Context, f FilterState) bool {
	if f.Sort == "" {
		f.Sort = SortRelevance
	}
	if f.Category == "" {
		f.Category = All
	}
	if f.Source == "" {
		f.Source = All
	}

	s.mu.Lock()
	before := s.queryLocked()
	s.filter = f
	s.pager.Reset()
	refetch := s.queryLocked() != before
	if !refetch {
		s.rebuildLocked()
	}
	s.mu.Unlock()

	if refetch {
		s.Refresh(ctx)
	}
	return refetch
}

// Page returns the current page of the view.
func (s *Session) Page() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	start, end := s.pager.Bounds()
	rows := make([]ranking.ScoredArticle, end-start)
	copy(rows, s.view[start:end])
	return Page{
		Number:     s.pager.Current(),
		TotalPages: s.pager.TotalPages(),
		PageSize:   s.pager.Size(),
		Total:      len(s.view),
		Offset:     start,
		Filter:     s.filter,
		Articles:   rows,
	}
}

// View returns a copy of the whole filtered, ranked list.
func (s *Session) View() []ranking.ScoredArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ranking.ScoredArticle, len(s.view))
	copy(out, s.view)
	return out
}

// Next moves to the next page.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Next()
}

// Prev moves to the previous page.
func (s *Session) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Prev()
}

// Jump moves to the page named by input; invalid input is ignored.
func (s *Session) Jump(input string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Jump(input)
}

// Article returns the row at a 1-based view position.
func (s *Session) Article(position int) (ranking.ScoredArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if position < 1 || position > len(s.view) {
		return ranking.ScoredArticle{}, fmt.Errorf("%w: %d (1-%d)", ErrPositionOutOfRange, position, len(s.view))
	}
	return s.view[position-1], nil
}

// Resolve finds an article by view position or by key and returns its position.
func (s *Session) Resolve(ref string) (int, ranking.ScoredArticle, error) {
	ref = strings.TrimSpace(ref)
	if pos, err := strconv.Atoi(ref); err == nil {
		a, err := s.Article(pos)
		return pos, a, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.view {
		if a.Key == ref {
			return i + 1, a, nil
		}
	}
	return 0, ranking.ScoredArticle{}, fmt.Errorf("%w: %s", ErrUnknownArticle, ref)
}

// Vote records feedback for the article named by ref and re-ranks the view.
func (s *Session) Vote(ctx context.Context, ref string, dir ledger.Direction) (ranking.ScoredArticle, ledger.Entry, error) {
	_, a, err := s.Resolve(ref)
	if err != nil {
		return ranking.ScoredArticle{}, ledger.Entry{}, err
	}
	entry, err := s.ledger.Record(ctx, a.Key, dir)

	s.mu.Lock()
	s.rebuildLocked()
	s.mu.Unlock()

	if err != nil {
		return a, entry, fmt.Errorf("failed to record vote: %w", err)
	}
	return a, entry, nil
}

// Suggest returns loaded titles containing query.
func (s *Session) Suggest(query string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Suggest(s.articles, query, s.opts.MaxSuggestions)
}

// Loaded is the number of articles in the current unfiltered set.
func (s *Session) Loaded() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.articles)
}
