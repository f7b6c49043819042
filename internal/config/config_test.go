package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Feed.PageSize != 50 {
		t.Errorf("expected PageSize=50, got %d", cfg.Feed.PageSize)
	}

	if cfg.NewsAPI.Country != "us" {
		t.Errorf("expected Country=us, got %s", cfg.NewsAPI.Country)
	}

	if len(cfg.Feed.Sources) != 5 {
		t.Errorf("expected 5 sources, got %d", len(cfg.Feed.Sources))
	}

	if len(cfg.Feed.Tags) != 10 {
		t.Errorf("expected 10 tags, got %d", len(cfg.Feed.Tags))
	}

	if cfg.Credibility.Default != 500 {
		t.Errorf("expected credibility default=500, got %d", cfg.Credibility.Default)
	}

	if cfg.Credibility.Scores["BBC News"] != 1000 {
		t.Errorf("expected BBC News=1000, got %d", cfg.Credibility.Scores["BBC News"])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "invalid country",
			modify: func(c *Config) {
				c.NewsAPI.Country = "usa"
			},
			wantErr: true,
		},
		{
			name: "invalid provider page size",
			modify: func(c *Config) {
				c.NewsAPI.PageSize = 500
			},
			wantErr: true,
		},
		{
			name: "invalid feed page size",
			modify: func(c *Config) {
				c.Feed.PageSize = 0
			},
			wantErr: true,
		},
		{
			name: "source without id",
			modify: func(c *Config) {
				c.Feed.Sources = append(c.Feed.Sources, SourceConfig{Name: "Reuters"})
			},
			wantErr: true,
		},
		{
			name: "all is reserved",
			modify: func(c *Config) {
				c.Feed.Categories = append(c.Feed.Categories, "all")
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Log.Level = "loud"
			},
			wantErr: true,
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[newsapi]
country = "gb"

[feed]
page_size = 20
tags = ["Brexit"]

[[feed.sources]]
name = "Reuters"
id = "reuters"

[credibility]
default = 100

[credibility.scores]
"Reuters" = 990

[themes.hierarchy.weather]
storms = ["hurricane", "tornado"]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NewsAPI.Country != "gb" {
		t.Errorf("Country = %q, want gb", cfg.NewsAPI.Country)
	}
	if cfg.NewsAPI.APIKey != "secret" {
		t.Errorf("APIKey = %q, want value from %s", cfg.NewsAPI.APIKey, EnvAPIKey)
	}
	if cfg.Feed.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", cfg.Feed.PageSize)
	}
	if len(cfg.Feed.Sources) != 1 || cfg.Feed.Sources[0].ID != "reuters" {
		t.Errorf("Sources = %v, want only reuters", cfg.Feed.Sources)
	}
	if cfg.Credibility.Default != 100 {
		t.Errorf("Credibility.Default = %d, want 100", cfg.Credibility.Default)
	}
	if cfg.Credibility.Scores["Reuters"] != 990 {
		t.Errorf("Scores[Reuters] = %d, want 990", cfg.Credibility.Scores["Reuters"])
	}
	if got := cfg.Themes.Hierarchy["weather"]["storms"]; len(got) != 2 {
		t.Errorf("Themes.Hierarchy[weather][storms] = %v, want 2 keywords", got)
	}
	// untouched sections keep defaults
	if cfg.NewsAPI.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want default 10", cfg.NewsAPI.TimeoutSeconds)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvDatabase, "/tmp/newsfeed-test.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "/tmp/newsfeed-test.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvAPIKey, "")
	os.Unsetenv(EnvAPIKey)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvAPIKey+"=from-dotenv\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NewsAPI.APIKey != "from-dotenv" {
		t.Errorf("APIKey = %q, want from-dotenv", cfg.NewsAPI.APIKey)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[newsapi\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestTimeouts(t *testing.T) {
	cfg := Default()

	if got := cfg.NewsAPI.Timeout(); got != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", got)
	}
	if got := cfg.NewsAPI.CacheTTL(); got != 5*time.Minute {
		t.Errorf("CacheTTL() = %v, want 5m", got)
	}
}

func TestEnsureDirectories(t *testing.T) {
	cfg := Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "data", "newsfeed.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	info, err := os.Stat(filepath.Dir(cfg.Database.Path))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", filepath.Dir(cfg.Database.Path))
	}
}
