package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/vijay-prabhu/newsfeed/internal/logging"
)

// ErrMissingAPIKey is returned when no provider key is configured.
var ErrMissingAPIKey = errors.New("news API key is not set (export NEWSAPI_KEY or add it to .env)")

// Options configures a Client.
type Options struct {
	BaseURL           string
	APIKey            string
	PageSize          int
	Timeout           time.Duration
	RequestsPerMinute int           // 0 disables rate limiting
	CacheSize         int           // 0 disables the response cache
	CacheTTL          time.Duration // entry lifetime when the cache is enabled
	Logger            logging.Logger
}

// Client fetches top headlines from a NewsAPI-compatible endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *expirable.LRU[string, []Article]
	log        logging.Logger
}

// New creates a new headlines client
func New(opts Options) *Client {
	c := &Client{
		baseURL:  strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:   opts.APIKey,
		pageSize: opts.PageSize,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		log: opts.Logger,
	}
	if c.log == nil {
		c.log = logging.NewNop()
	}
	if opts.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1)
	}
	if opts.CacheSize > 0 {
		c.cache = expirable.NewLRU[string, []Article](opts.CacheSize, nil, opts.CacheTTL)
	}
	return c
}

// TopHeadlines fetches the current headlines for q.
// Failures are returned as errors; callers decide how to degrade.
func (c *Client) TopHeadlines(ctx context.Context, q Query) ([]Article, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := c.params(q)
	cacheKey := params.Encode()
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			c.log.Debug("headlines cache hit", logging.String("query", cacheKey))
			return slices.Clone(cached), nil
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}
	}

	params.Set("apiKey", c.apiKey)
	reqURL := c.baseURL + "/top-headlines?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("headlines request failed: %w", err)
	}
	defer resp.Body.Close()

	var body headlinesResponse
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &body) == nil && body.Message != "" {
			return nil, fmt.Errorf("headlines request failed (status %d, %s): %s", resp.StatusCode, body.Code, body.Message)
		}
		return nil, fmt.Errorf("headlines request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("provider returned status %q: %s", body.Status, body.Message)
	}

	articles := body.Articles
	if q.Category != "" && q.SourceID == "" {
		for i := range articles {
			articles[i].Category = q.Category
		}
	}

	c.log.Debug("fetched headlines",
		logging.Int("count", len(articles)),
		logging.Int("total_results", body.TotalResults),
		logging.Duration("took", time.Since(start)),
	)

	if c.cache != nil {
		c.cache.Add(cacheKey, slices.Clone(articles))
	}
	return articles, nil
}

// params builds the query string without the key. The provider rejects sources
// combined with country or category, so a source id wins.
func (c *Client) params(q Query) url.Values {
	params := url.Values{}
	if q.SourceID != "" {
		params.Set("sources", q.SourceID)
	} else {
		if q.Country != "" {
			params.Set("country", q.Country)
		}
		if q.Category != "" {
			params.Set("category", q.Category)
		}
	}
	if c.pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(c.pageSize))
	}
	return params
}
