package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/output"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show ranked top headlines",
	Long: `Fetch top headlines, filter them and print one page ranked by relevance.

Relevance adds up content length, publication time, your votes, a search
match bonus and the source's credibility score.

Examples:
  newsfeed feed                              # First page, most relevant first
  newsfeed feed --sort=date --page=2         # Newest first, second page
  newsfeed feed --category=technology        # One category
  newsfeed feed --source="BBC News"          # One source
  newsfeed feed --tag=AI -q Election         # Trending tag plus search text
  newsfeed feed -o json                      # Output as JSON`,
	RunE: runFeed,
}

var (
	feedFilters filterFlags
	feedPage    string
)

func init() {
	rootCmd.AddCommand(feedCmd)

	feedFilters.register(feedCmd)
	feedCmd.Flags().StringVar(&feedPage, "page", "1", "page number; out-of-range values show page 1")
}

func runFeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := feedFilters.state()
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.load(ctx, f)
	a.session.Jump(feedPage)

	return output.Output(outputFmt, a.session.Page())
}
