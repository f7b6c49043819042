package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vijay-prabhu/newsfeed/internal/feed"
	"github.com/vijay-prabhu/newsfeed/internal/ledger"
	"github.com/vijay-prabhu/newsfeed/internal/news"
	"github.com/vijay-prabhu/newsfeed/internal/ranking"
	"github.com/vijay-prabhu/newsfeed/internal/summary"
	"github.com/vijay-prabhu/newsfeed/internal/themes"
)

// ArticleDetail is the full view of one article
type ArticleDetail struct {
	Position int                   `json:"position"`
	Article  ranking.ScoredArticle `json:"article"`
	Votes    ledger.Entry          `json:"votes"`
	Summary  string                `json:"summary"`
	Links    []summary.Link        `json:"links"`
}

// VoteResult reports a recorded vote
type VoteResult struct {
	Key       string           `json:"key"`
	Title     string           `json:"title"`
	Direction ledger.Direction `json:"direction"`
	Votes     ledger.Entry     `json:"votes"`
}

// ThemeReport is the analysis of a free-text query
type ThemeReport struct {
	Text     string          `json:"text"`
	Analysis themes.Analysis `json:"analysis"`
	Matches  themes.Result   `json:"matches"`
}

// Controls lists the selectable filter values
type Controls struct {
	Categories  []string              `json:"categories"`
	Sources     []news.Source         `json:"sources"`
	Tags        []string              `json:"tags"`
	SortOptions []feed.SortOption     `json:"sortOptions"`
	Credibility []ranking.SourceScore `json:"credibility"`
	Default     int64                 `json:"defaultCredibility"`
}

// Suggestions is a list of matching titles
type Suggestions []string

// Table writes data as a formatted table to stdout
func Table(data any) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data any) error {
	switch v := data.(type) {
	case feed.Page:
		return pageTable(w, v)
	case *feed.Page:
		return pageTable(w, *v)
	case []ledger.Record:
		return votesTable(w, v)
	case *ArticleDetail:
		return articleDetail(w, v)
	case *VoteResult:
		return voteResult(w, v)
	case *ThemeReport:
		return themeReport(w, v)
	case *Controls:
		return controlsTable(w, v)
	case Suggestions:
		return suggestionList(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

func render(w io.Writer, header []string, rows [][]string) error {
	table := newTable(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func pageTable(w io.Writer, p feed.Page) error {
	if len(p.Articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return nil
	}

	rows := make([][]string, 0, len(p.Articles))
	for i, a := range p.Articles {
		rows = append(rows, []string{
			strconv.Itoa(p.Offset + i + 1),
			truncate(a.Title, 60),
			truncate(a.Source.Name, 20),
			formatPublished(a.Article),
			strconv.FormatInt(a.RelevanceScore, 10),
		})
	}
	if err := render(w, []string{"#", "Title", "Source", "Published", "Score"}, rows); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPage %d/%d (%d articles, sort: %s%s)\n",
		p.Number, p.TotalPages, p.Total, p.Filter.Sort, describeFilter(p.Filter))
	return nil
}

func describeFilter(f feed.FilterState) string {
	var parts []string
	if f.Category != "" && f.Category != feed.All {
		parts = append(parts, "category: "+f.Category)
	}
	if f.Source != "" && f.Source != feed.All {
		parts = append(parts, "source: "+f.Source)
	}
	if f.Tag != "" {
		parts = append(parts, "tag: "+f.Tag)
	}
	if f.Query != "" {
		parts = append(parts, fmt.Sprintf("query: %q", f.Query))
	}
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}

func votesTable(w io.Writer, records []ledger.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No feedback recorded.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Key,
			strconv.Itoa(r.Entry.Up),
			strconv.Itoa(r.Entry.Down),
			fmt.Sprintf("%+d", r.Entry.Net()),
		})
	}
	return render(w, []string{"Key", "Up", "Down", "Net"}, rows)
}

func articleDetail(w io.Writer, d *ArticleDetail) error {
	a := d.Article
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "[%d] %s\n", d.Position, wordWrap(a.Title, 74))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "Source:      %s\n", a.Source.Name)
	if a.Author != "" {
		fmt.Fprintf(w, "Author:      %s\n", a.Author)
	}
	fmt.Fprintf(w, "Published:   %s\n", formatPublished(a.Article))
	if a.Category != "" {
		fmt.Fprintf(w, "Category:    %s\n", a.Category)
	}
	if a.URL != "" {
		fmt.Fprintf(w, "URL:         %s\n", a.URL)
	}
	fmt.Fprintf(w, "Key:         %s\n", a.Key)
	fmt.Fprintf(w, "Votes:       +%d / -%d\n", d.Votes.Up, d.Votes.Down)
	fmt.Fprintln(w)

	b := a.Breakdown
	fmt.Fprintf(w, "Score:       %d\n", a.RelevanceScore)
	fmt.Fprintf(w, "  content      %d\n", b.ContentLength)
	fmt.Fprintf(w, "  published    %d\n", b.Published)
	fmt.Fprintf(w, "  feedback     %d\n", b.Feedback)
	fmt.Fprintf(w, "  query        %d\n", b.QueryRelevance)
	fmt.Fprintf(w, "  credibility  %d\n", b.Credibility)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Summary:")
	fmt.Fprintln(w, wordWrap(d.Summary, 78))

	if len(d.Links) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Related:")
		for _, l := range d.Links {
			fmt.Fprintf(w, "  %s: %s\n", l.Title, l.URL)
		}
	}
	return nil
}

func voteResult(w io.Writer, v *VoteResult) error {
	fmt.Fprintf(w, "Recorded %s vote for %q (+%d / -%d)\n", v.Direction, v.Title, v.Votes.Up, v.Votes.Down)
	return nil
}

func themeReport(w io.Writer, r *ThemeReport) error {
	fmt.Fprintf(w, "Topics: %s\n", joinOrNone(r.Analysis.Topics))
	fmt.Fprintf(w, "Themes: %s\n", joinOrNone(r.Analysis.Themes))
	fmt.Fprintln(w)

	if len(r.Matches) == 0 {
		fmt.Fprintln(w, "No matching themes.")
		return nil
	}

	var rows [][]string
	for _, theme := range r.Matches.Themes() {
		for _, sub := range themes.Hierarchy(r.Matches).SubThemes(theme) {
			rows = append(rows, []string{theme, sub, strings.Join(r.Matches[theme][sub], ", ")})
		}
	}
	return render(w, []string{"Theme", "Sub-theme", "Keywords"}, rows)
}

func controlsTable(w io.Writer, c *Controls) error {
	fmt.Fprintf(w, "Categories: %s\n", joinOrNone(c.Categories))
	fmt.Fprintf(w, "Tags:       %s\n", joinOrNone(c.Tags))
	sorts := make([]string, len(c.SortOptions))
	for i, s := range c.SortOptions {
		sorts[i] = string(s)
	}
	fmt.Fprintf(w, "Sort:       %s\n", strings.Join(sorts, ", "))
	fmt.Fprintln(w)

	scores := make(map[string]int64, len(c.Credibility))
	for _, s := range c.Credibility {
		scores[s.Source] = s.Score
	}

	var rows [][]string
	seen := make(map[string]bool)
	for _, s := range c.Sources {
		score, ok := scores[s.Name]
		if !ok {
			score = c.Default
		}
		rows = append(rows, []string{s.Name, s.ID, strconv.FormatInt(score, 10)})
		seen[s.Name] = true
	}
	for _, s := range c.Credibility {
		if !seen[s.Source] {
			rows = append(rows, []string{s.Source, "", strconv.FormatInt(s.Score, 10)})
		}
	}
	if err := render(w, []string{"Source", "ID", "Credibility"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nUnlisted sources score %d.\n", c.Default)
	return nil
}

func suggestionList(w io.Writer, s Suggestions) error {
	if len(s) == 0 {
		fmt.Fprintln(w, "No suggestions.")
		return nil
	}
	for _, title := range s {
		fmt.Fprintln(w, title)
	}
	return nil
}

func formatPublished(a news.Article) string {
	t, ok := a.Published()
	if !ok {
		return "-"
	}
	return t.Format("Jan 02, 2006 15:04")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// wordWrap wraps text at the specified width
func wordWrap(text string, width int) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if len(line) <= width {
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}
		result.WriteString(currentLine)
		result.WriteString("\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

// NewArticleDetail assembles the detail view for the article at position
func NewArticleDetail(position int, a ranking.ScoredArticle, votes ledger.Entry, links []summary.LinkTemplate) *ArticleDetail {
	return &ArticleDetail{
		Position: position,
		Article:  a,
		Votes:    votes,
		Summary:  summary.Summarize(a.Content),
		Links:    summary.ContextualLinks(a.Article, links),
	}
}
