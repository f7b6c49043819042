package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/feed"
	"github.com/vijay-prabhu/newsfeed/internal/output"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List categories, sources, tags and credibility scores",
	Args:  cobra.NoArgs,
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return output.Output(outputFmt, &output.Controls{
		Categories:  a.cfg.Feed.Categories,
		Sources:     a.sources(),
		Tags:        a.cfg.Feed.Tags,
		SortOptions: feed.SortOptions,
		Credibility: a.credibility.Entries(),
		Default:     a.credibility.Default(),
	})
}
