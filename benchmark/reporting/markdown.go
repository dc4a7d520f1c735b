// Package reporting provides report generation for self-play runs.
package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/discochess/patzer/benchmark/analysis"
	"github.com/discochess/patzer/benchmark/simulation"
)

// MarkdownReport generates self-play reports in Markdown format.
type MarkdownReport struct {
	w io.Writer
}

// NewMarkdownReport creates a new Markdown report writer.
func NewMarkdownReport(w io.Writer) *MarkdownReport {
	return &MarkdownReport{w: w}
}

// WriteHeader writes the report header.
func (r *MarkdownReport) WriteHeader(title string) {
	fmt.Fprintf(r.w, "# %s\n\n", title)
	fmt.Fprintf(r.w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
}

// WriteMethodology writes the methodology section.
func (r *MarkdownReport) WriteMethodology(cfg simulation.Config) {
	fmt.Fprintln(r.w, "## Methodology")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "- **White strength:** %d\n", cfg.WhiteElo)
	fmt.Fprintf(r.w, "- **Black strength:** %d\n", cfg.BlackElo)
	fmt.Fprintf(r.w, "- **Games:** %d\n", cfg.Games)
	fmt.Fprintln(r.w, "- **Metric:** White score rate (win=1, draw=0.5, loss=0)")
	fmt.Fprintln(r.w, "- **Elo model:** logistic, diff = -400*log10(1/score - 1)")
	fmt.Fprintln(r.w)
}

// WriteSummary writes the aggregate results table.
func (r *MarkdownReport) WriteSummary(summary *simulation.Summary) {
	fmt.Fprintln(r.w, "## Summary")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "| Wins (White) | Wins (Black) | Draws | Score rate |")
	fmt.Fprintln(r.w, "|--------------|--------------|-------|------------|")
	fmt.Fprintf(r.w, "| %d | %d | %d | %.3f |\n",
		summary.WhiteWins, summary.BlackWins, summary.Draws, summary.WhiteScore())
	fmt.Fprintln(r.w)
}

// WriteEloEstimate writes the estimated Elo difference section.
func (r *MarkdownReport) WriteEloEstimate(stats analysis.ScoreStats, est analysis.EloEstimate) {
	fmt.Fprintln(r.w, "## Estimated strength difference")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "- **Score rate:** %.3f ± %.3f (std err)\n", stats.Mean, stats.StdErr)
	fmt.Fprintf(r.w, "- **Elo difference (White - Black):** %+.0f\n", est.Diff)
	fmt.Fprintf(r.w, "- **95%% CI:** [%+.0f, %+.0f]\n", est.CI95Low, est.CI95High)
	fmt.Fprintln(r.w)
}

// WriteGames writes a per-game detail table.
func (r *MarkdownReport) WriteGames(summary *simulation.Summary) {
	fmt.Fprintln(r.w, "## Games")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "| # | Result | Plies | Nodes |")
	fmt.Fprintln(r.w, "|---|--------|-------|-------|")
	for i, rec := range summary.Records {
		fmt.Fprintf(r.w, "| %d | %s | %d | %d |\n", i+1, rec.Result, rec.Plies, rec.Nodes)
	}
	fmt.Fprintln(r.w)
}
