package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/sentimeter/internal/client/models"
)

var (
	colorNotice   = lipgloss.Color("#FFC107")
	colorFailure  = lipgloss.Color("#E53935")
	colorSuccess  = lipgloss.Color("#8BC34A")
	colorPositive = lipgloss.Color("#8BC34A")
	colorNeutral  = lipgloss.Color("#2196F3")
	colorNegative = lipgloss.Color("#E53935")
)

// Console writes operator-facing messages. Normal output goes to out,
// notices and failures to errOut. Colours are only emitted when the writer
// is a terminal that supports them.
type Console struct {
	out    io.Writer
	errOut io.Writer

	notice  lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style
	label   lipgloss.Style
	faint   lipgloss.Style
	scores  map[string]lipgloss.Style
}

func NewConsole(out, errOut io.Writer) *Console {
	ro := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)

	return &Console{
		out:     out,
		errOut:  errOut,
		notice:  re.NewStyle().Foreground(colorNotice),
		failure: re.NewStyle().Foreground(colorFailure),
		success: ro.NewStyle().Foreground(colorSuccess),
		label:   ro.NewStyle().Bold(true),
		faint:   ro.NewStyle().Faint(true),
		scores: map[string]lipgloss.Style{
			"positive": ro.NewStyle().Foreground(colorPositive).Bold(true),
			"neutral":  ro.NewStyle().Foreground(colorNeutral).Bold(true),
			"negative": ro.NewStyle().Foreground(colorNegative).Bold(true),
		},
	}
}

func (c *Console) Notice(msg string) {
	fmt.Fprintln(c.errOut, c.notice.Render(msg))
}

func (c *Console) Failure(msg string) {
	fmt.Fprintln(c.errOut, c.failure.Render(msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.success.Render(msg))
}

// Report shows the raw payload and, when it could be parsed, the scores.
func (c *Console) Report(a models.Analysis) {
	fmt.Fprintf(c.out, "%s %s\n", c.label.Render("Result:"), strings.TrimSpace(string(a.Payload)))
	if a.Report == nil {
		return
	}
	fmt.Fprintln(c.out, c.formatReport(*a.Report))
}

func (c *Console) formatReport(r models.SentimentReport) string {
	dominant := r.Dominant()
	return fmt.Sprintf("%s positive %.3f | neutral %.3f | negative %.3f -> %s",
		c.label.Render("Sentiment:"), r.Positive, r.Neutral, r.Negative,
		c.scores[dominant].Render(dominant))
}

// History lists past analyses, newest first.
func (c *Console) History(list []models.Analysis) {
	if len(list) == 0 {
		fmt.Fprintln(c.out, c.faint.Render("No analyses recorded yet."))
		return
	}
	for _, a := range list {
		fmt.Fprintf(c.out, "%s  %q\n", c.faint.Render(a.CreatedAt.Local().Format("2006-01-02 15:04:05")), a.Text)
		if a.Report != nil {
			fmt.Fprintf(c.out, "  %s\n", c.formatReport(*a.Report))
		} else {
			fmt.Fprintf(c.out, "  %s %s\n", c.label.Render("Result:"), strings.TrimSpace(string(a.Payload)))
		}
	}
}
