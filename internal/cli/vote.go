package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/output"
)

var voteCmd = &cobra.Command{
	Use:   "vote <up|down> <position|key>",
	Short: "Vote an article up or down",
	Long: `Record feedback for an article. Each net up vote adds 100 to its
relevance score; votes are kept across runs.

The article is either its position in the listing (use the same filter
flags you listed it with) or its key from 'newsfeed show'.

Examples:
  newsfeed vote up 3
  newsfeed vote down 12 --category=sports
  newsfeed vote up 6f1c2e0a-5d7b-5e7e-9a43-0b8d1f8c2a11`,
	Args: cobra.ExactArgs(2),
	RunE: runVote,
}

var voteFilters filterFlags

func init() {
	rootCmd.AddCommand(voteCmd)
	voteFilters.register(voteCmd)
}

func runVote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dir, err := ledger.ParseDirection(args[0])
	if err != nil {
		return err
	}
	f, err := voteFilters.state()
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.load(ctx, f)
	article, entry, err := a.session.Vote(ctx, args[1], dir)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, &output.VoteResult{
		Key:       article.Key,
		Title:     article.Title,
		Direction: dir,
		Votes:     entry,
	})
}
