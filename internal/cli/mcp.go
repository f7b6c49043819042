package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/mcp"
	"github.com/vijay-prabhu/newsfeed/internal/themes"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This lets AI assistants list and rank headlines, record votes, summarize
articles and match themes.

Add to Claude Desktop config (~/Library/Application Support/Claude/claude_desktop_config.json):

{
  "mcpServers": {
    "newsfeed": {
      "command": "/path/to/newsfeed",
      "args": ["mcp"],
      "env": {"NEWSAPI_KEY": "..."}
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	// Check if MCP is enabled
	if !a.cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	server := mcp.New(mcp.Options{
		Session:     a.session,
		Ledger:      a.ledger,
		Credibility: a.credibility,
		Hierarchy:   a.hierarchy,
		Analyzer:    themes.NewKeywordAnalyzer(a.hierarchy),
		Links:       a.links,
		Logger:      a.log,
		Version:     version,
	})

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	// Run server
	return server.Start(ctx)
}
