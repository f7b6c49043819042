package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/feed"
	"github.com/vijay-prabhu/newsfeed/internal/output"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial title>",
	Short: "Suggest headline titles",
	Long: `List loaded headline titles that contain the given text.

Matching is case-sensitive and needs at least 3 characters.

Examples:
  newsfeed suggest Elec
  newsfeed suggest "climate sum"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.load(ctx, feed.DefaultFilter())

	return output.Output(outputFmt, output.Suggestions(a.session.Suggest(query)))
}
