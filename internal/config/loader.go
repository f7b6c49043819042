package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/vijay-prabhu/newsfeed/internal/logging"
)

// Environment variables consulted after the file is parsed.
const (
	EnvAPIKey   = "NEWSAPI_KEY"
	EnvDatabase = "NEWSFEED_DB"
	EnvLogLevel = "NEWSFEED_LOG_LEVEL"
)

// Load reads and parses the configuration file. A missing file is not an
// error: the defaults apply, so the tool works before 'config init'.
func Load(path string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(expandedPath)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.NewsAPI.APIKey = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// NewsAPI validation
	if c.NewsAPI.BaseURL == "" {
		errs = append(errs, errors.New("newsapi.base_url is required"))
	}
	if len(c.NewsAPI.Country) != 2 {
		errs = append(errs, fmt.Errorf("newsapi.country must be a 2-letter code, got '%s'", c.NewsAPI.Country))
	}
	if c.NewsAPI.PageSize < 1 || c.NewsAPI.PageSize > 100 {
		errs = append(errs, errors.New("newsapi.page_size must be between 1 and 100"))
	}
	if c.NewsAPI.TimeoutSeconds < 1 {
		errs = append(errs, errors.New("newsapi.timeout_seconds must be at least 1"))
	}
	if c.NewsAPI.RequestsPerMinute < 0 {
		errs = append(errs, errors.New("newsapi.requests_per_minute must not be negative"))
	}
	if c.NewsAPI.CacheSize < 0 || c.NewsAPI.CacheTTLSeconds < 0 {
		errs = append(errs, errors.New("newsapi.cache_size and newsapi.cache_ttl_seconds must not be negative"))
	}

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Feed validation
	if c.Feed.PageSize < 1 {
		errs = append(errs, errors.New("feed.page_size must be at least 1"))
	}
	if c.Feed.MaxSuggestions < 0 {
		errs = append(errs, errors.New("feed.max_suggestions must not be negative"))
	}
	if slices.Contains(c.Feed.Categories, "all") {
		errs = append(errs, errors.New("feed.categories must not contain 'all'"))
	}
	for i, s := range c.Feed.Sources {
		if s.Name == "" || s.ID == "" {
			errs = append(errs, fmt.Errorf("feed.sources[%d] needs both name and id", i))
		}
	}

	// Summary validation
	for i, l := range c.Summary.Links {
		if l.Title == "" || l.URL == "" {
			errs = append(errs, fmt.Errorf("summary.links[%d] needs both title and url", i))
		}
	}

	// Log validation
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level))
	}

	// MCP validation
	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates the database directory
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
