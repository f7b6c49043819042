package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/newsfeed/internal/feed"
	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/output"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse headlines interactively",
	Long: `Open an interactive session over the ranked headlines.

Type 'help' at the prompt for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

var browseFilters filterFlags

func init() {
	rootCmd.AddCommand(browseCmd)
	browseFilters.register(browseCmd)
}

const browseHelp = `Commands:
  n, next            next page
  p, prev            previous page
  g <page>           jump to page
  sort <option>      relevance, date or popularity
  cat <name|all>     filter by category (clears tag)
  src <name|all>     filter by source name
  tag [name]         filter by trending tag (clears category); no name clears it
  q [text]           search text; no text clears it
  up <#>, down <#>   vote for the article at position #
  show <#>           article details, summary and related links
  suggest <text>     titles containing text
  r, refresh         refetch headlines
  help               this help
  quit               leave`

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := browseFilters.state()
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	b := &browser{app: a, out: os.Stdout}
	a.load(ctx, f)
	return b.run(ctx, os.Stdin)
}

type browser struct {
	app *app
	out io.Writer
}

func (b *browser) run(ctx context.Context, in io.Reader) error {
	b.printPage()
	fmt.Fprintf(b.out, "Categories: %s\n", strings.Join(b.app.cfg.Feed.Categories, ", "))
	fmt.Fprintf(b.out, "Trending:   %s\n", strings.Join(b.app.cfg.Feed.Tags, ", "))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(b.out, b.app.term.Color("newsfeed> ", color.FgCyan))
		if !scanner.Scan() {
			fmt.Fprintln(b.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if b.exec(ctx, scanner.Text()) {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (b *browser) exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	s := b.app.session

	switch cmd {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(b.out, browseHelp)
		return false
	case "n", "next":
		s.Next()
	case "p", "prev":
		s.Prev()
	case "g", "go":
		// invalid pages leave the view where it is
		s.Jump(arg)
	case "r", "refresh":
		b.refresh(ctx)
	case "sort":
		opt, err := feed.ParseSortOption(arg)
		if err != nil {
			b.warn(err)
			return false
		}
		f := s.Filter()
		f.Sort = opt
		b.apply(ctx, f)
	case "cat":
		b.apply(ctx, s.Filter().WithCategory(orAll(arg)))
	case "src":
		f := s.Filter()
		f.Source = orAll(arg)
		b.apply(ctx, f)
	case "tag":
		b.apply(ctx, s.Filter().WithTag(arg))
	case "q", "search":
		f := s.Filter()
		f.Query = arg
		b.apply(ctx, f)
	case "up", "down":
		b.vote(ctx, ledger.Direction(cmd), arg)
		return false
	case "show":
		b.show(arg)
		return false
	case "suggest":
		if err := output.TableTo(b.out, output.Suggestions(s.Suggest(arg))); err != nil {
			b.warn(err)
		}
		return false
	default:
		fmt.Fprintf(b.out, "Unknown command %q; type 'help' for the list.\n", cmd)
		return false
	}

	b.printPage()
	return false
}

func (b *browser) apply(ctx context.Context, f feed.FilterState) {
	stop := b.app.term.Spin("Fetching headlines...")
	defer stop()
	b.app.session.SetFilter(ctx, f)
}

func (b *browser) refresh(ctx context.Context) {
	stop := b.app.term.Spin("Fetching headlines...")
	defer stop()
	b.app.session.Refresh(ctx)
}

func (b *browser) vote(ctx context.Context, dir ledger.Direction, arg string) {
	if _, err := parsePosition(arg); err != nil {
		b.warn(err)
		return
	}
	a, entry, err := b.app.session.Vote(ctx, arg, dir)
	if err != nil {
		b.warn(err)
		if a.Key == "" {
			return
		}
	}
	fmt.Fprintf(b.out, "%s  %s\n", b.app.term.Vote(entry.Up, entry.Down), a.Title)
}

func (b *browser) show(arg string) {
	if _, err := parsePosition(arg); err != nil {
		b.warn(err)
		return
	}
	pos, a, err := b.app.session.Resolve(arg)
	if err != nil {
		b.warn(err)
		return
	}
	votes, _ := b.app.ledger.Entry(a.Key)
	if err := output.TableTo(b.out, output.NewArticleDetail(pos, a, votes, b.app.links)); err != nil {
		b.warn(err)
	}
}

func (b *browser) printPage() {
	if err := b.app.session.Err(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(b.out, b.app.term.Color("Could not fetch headlines: "+err.Error(), color.FgYellow))
	}
	if err := output.TableTo(b.out, b.app.session.Page()); err != nil {
		b.warn(err)
	}
}

func (b *browser) warn(err error) {
	fmt.Fprintln(b.out, b.app.term.Color(err.Error(), color.FgRed))
}

func orAll(s string) string {
	if s == "" {
		return feed.All
	}
	return s
}
