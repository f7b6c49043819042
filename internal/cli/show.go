package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <position|key>",
	Short: "Show article details",
	Long: `Show an article with its score breakdown, a short summary and related links.

The identifier can be:
  - Position in the listing (use the same filter flags you listed it with)
  - Article key

Examples:
  newsfeed show 1
  newsfeed show 4 --sort=date`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showFilters filterFlags

func init() {
	rootCmd.AddCommand(showCmd)
	showFilters.register(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := showFilters.state()
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.load(ctx, f)
	pos, article, err := a.session.Resolve(args[0])
	if err != nil {
		return err
	}
	votes, _ := a.ledger.Entry(article.Key)

	return output.Output(outputFmt, output.NewArticleDetail(pos, article, votes, a.links))
}
