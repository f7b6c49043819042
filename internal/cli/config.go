package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Defaults (plus env overrides) decide where the database lives
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists at %s\n", configPath)
		fmt.Println("Use 'newsfeed config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Get an API key from https://newsapi.org")
	fmt.Println("  2. export NEWSAPI_KEY=<key>  (or put it in a .env file)")
	fmt.Println("  3. Run 'newsfeed feed' or 'newsfeed browse'")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found; built-in defaults apply. Run 'newsfeed config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# newsfeed configuration

[newsapi]
base_url = "https://newsapi.org/v2"
country = "us"
page_size = 100            # headlines per request (max 100)
timeout_seconds = 10
requests_per_minute = 30   # 0 disables client-side rate limiting
cache_ttl_seconds = 300
cache_size = 64            # 0 disables the response cache
# API key read from NEWSAPI_KEY env var (a .env file in the working directory is loaded)

[database]
path = "~/.local/share/newsfeed/newsfeed.db"

[feed]
page_size = 50
max_suggestions = 0        # 0 means no cap
categories = [
    "business",
    "entertainment",
    "general",
    "health",
    "science",
    "sports",
    "technology"
]
tags = ["AI", "Election", "Climate", "Inflation", "Ukraine", "NASA", "Vaccine", "Bitcoin", "Olympics", "Oscars"]

[[feed.sources]]
name = "BBC News"
id = "bbc-news"

[[feed.sources]]
name = "CNN"
id = "cnn"

[[feed.sources]]
name = "Fox News"
id = "fox-news"

[[feed.sources]]
name = "The New York Times"
id = "the-new-york-times"

[[feed.sources]]
name = "The Guardian"
id = "the-guardian-uk"

[credibility]
default = 500              # any source not listed below

[credibility.scores]
"BBC News" = 1000
"CNN" = 900
"Fox News" = 800
"The New York Times" = 950
"The Guardian" = 920

# Replace the built-in theme taxonomy (names match exactly)
# [themes.hierarchy.weather]
# storms = ["hurricane", "tornado"]

# Related links on the article page; {query} becomes the escaped title
# [[summary.links]]
# title = "Related Coverage"
# url = "https://news.google.com/search?q={query}"

[log]
level = "warn"

[mcp]
enabled = true
transport = "stdio"
`
