package config

import "time"

// Config represents the application configuration
type Config struct {
	NewsAPI     NewsAPIConfig     `toml:"newsapi"`
	Database    DatabaseConfig    `toml:"database"`
	Feed        FeedConfig        `toml:"feed"`
	Credibility CredibilityConfig `toml:"credibility"`
	Themes      ThemesConfig      `toml:"themes"`
	Summary     SummaryConfig     `toml:"summary"`
	Log         LogConfig         `toml:"log"`
	MCP         MCPConfig         `toml:"mcp"`
}

// NewsAPIConfig contains headline provider settings
type NewsAPIConfig struct {
	BaseURL           string `toml:"base_url"`
	Country           string `toml:"country"`
	PageSize          int    `toml:"page_size"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
	CacheTTLSeconds   int    `toml:"cache_ttl_seconds"`
	CacheSize         int    `toml:"cache_size"`
	// API key is read from NEWSAPI_KEY environment variable
	APIKey string `toml:"-"`
}

// Timeout returns the per-request timeout
func (n NewsAPIConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long a cached response stays valid
func (n NewsAPIConfig) CacheTTL() time.Duration {
	return time.Duration(n.CacheTTLSeconds) * time.Second
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// FeedConfig contains the view controls
type FeedConfig struct {
	PageSize       int            `toml:"page_size"`
	MaxSuggestions int            `toml:"max_suggestions"`
	Categories     []string       `toml:"categories"`
	Tags           []string       `toml:"tags"`
	Sources        []SourceConfig `toml:"sources"`
}

// SourceConfig is one selectable source
type SourceConfig struct {
	Name string `toml:"name"`
	ID   string `toml:"id"`
}

// CredibilityConfig contains per-source trust scores
type CredibilityConfig struct {
	Default int64            `toml:"default"`
	Scores  map[string]int64 `toml:"scores"`
}

// ThemesConfig optionally replaces the built-in theme hierarchy
type ThemesConfig struct {
	Hierarchy map[string]map[string][]string `toml:"hierarchy"`
}

// SummaryConfig contains article detail settings
type SummaryConfig struct {
	Links []LinkConfig `toml:"links"`
}

// LinkConfig is a contextual link template; {query} is replaced by the title
type LinkConfig struct {
	Title string `toml:"title"`
	URL   string `toml:"url"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `toml:"level"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		NewsAPI: NewsAPIConfig{
			BaseURL:           "https://newsapi.org/v2",
			Country:           "us",
			PageSize:          100,
			TimeoutSeconds:    10,
			RequestsPerMinute: 30,
			CacheTTLSeconds:   300,
			CacheSize:         64,
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/newsfeed/newsfeed.db",
		},
		Feed: FeedConfig{
			PageSize:       50,
			MaxSuggestions: 0,
			Categories: []string{
				"business",
				"entertainment",
				"general",
				"health",
				"science",
				"sports",
				"technology",
			},
			Tags: []string{
				"AI",
				"Election",
				"Climate",
				"Inflation",
				"Ukraine",
				"NASA",
				"Vaccine",
				"Bitcoin",
				"Olympics",
				"Oscars",
			},
			Sources: []SourceConfig{
				{Name: "BBC News", ID: "bbc-news"},
				{Name: "CNN", ID: "cnn"},
				{Name: "Fox News", ID: "fox-news"},
				{Name: "The New York Times", ID: "the-new-york-times"},
				{Name: "The Guardian", ID: "the-guardian-uk"},
			},
		},
		Credibility: CredibilityConfig{
			Default: 500,
			Scores: map[string]int64{
				"BBC News":           1000,
				"CNN":                900,
				"Fox News":           800,
				"The New York Times": 950,
				"The Guardian":       920,
			},
		},
		Log: LogConfig{
			Level: "warn",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
