package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/output"
)

var votesCmd = &cobra.Command{
	Use:   "votes",
	Short: "List recorded feedback",
	Long: `List every article key with its up and down votes, highest net score first.`,
	Args:  cobra.NoArgs,
	RunE:  runVotes,
}

func init() {
	rootCmd.AddCommand(votesCmd)
}

func runVotes(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return output.Output(outputFmt, a.ledger.Records())
}
