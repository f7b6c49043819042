package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/output"
	"github.com/vijay-prabhu/newsfeed/internal/themes"
)

var themesCmd = &cobra.Command{
	Use:   "themes <text>",
	Short: "Match free text against the theme taxonomy",
	Long: `Extract topics and candidate nouns from free text and map them onto the
theme, sub-theme and keyword taxonomy.

Examples:
  newsfeed themes "latest on artificial intelligence and chip exports"
  newsfeed themes inflation and the election -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	analysis := themes.NewKeywordAnalyzer(a.hierarchy).Analyze(text)
	return output.Output(outputFmt, &output.ThemeReport{
		Text:     text,
		Analysis: analysis,
		Matches:  themes.Match(a.hierarchy, analysis.Themes),
	})
}
