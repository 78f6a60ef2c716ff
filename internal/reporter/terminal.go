package reporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/promptsmith/promptsmith/internal/ledger"
	"github.com/promptsmith/promptsmith/internal/optimizer"
	"github.com/promptsmith/promptsmith/internal/scorer"
	"github.com/promptsmith/promptsmith/internal/ui"
)

// TerminalReporter outputs results to the terminal, styled when the
// output is a TTY.
type TerminalReporter struct {
	w io.Writer
	u *ui.UI
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, u: u}
}

// Optimization renders the before/after rewrite and its quality delta
func (r *TerminalReporter) Optimization(result *optimizer.Result) error {
	s := r.u.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("Optimized prompt"))
	fmt.Fprintf(r.w, "%s\n", s.Subheader.Render(fmt.Sprintf("style: %s · platform: %s · task: %s",
		result.Style, result.Platform, result.TaskType)))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, result.Optimized)
	fmt.Fprintln(r.w)

	grade := s.Grade(result.Scores.Grade).Render(result.Scores.Grade)
	delta := fmt.Sprintf("%+d", result.Scores.Improvement)
	if result.Scores.Improvement >= 0 {
		delta = s.Gain.Render(delta)
	} else {
		delta = s.Loss.Render(delta)
	}
	fmt.Fprintf(r.w, "%s %d → %d (%s)  grade %s\n",
		s.Label.Render("Score:"),
		result.Scores.Original, result.Scores.Optimized, delta, grade)

	fmt.Fprintf(r.w, "%s %.0f%%   %s ~%.0fs\n",
		s.Label.Render("Confidence:"), result.Confidence*100,
		s.Label.Render("Time saved:"), result.TimeSaved)

	if len(result.Improvements) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render("Improvements"))
		for _, imp := range result.Improvements {
			fmt.Fprintf(r.w, "  %s %s\n", s.Accent.Render(s.IconBullet), imp)
		}
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Dim.Render(fmt.Sprintf("%d chars (%+d) · %+d words · %dms",
		len(result.Optimized), result.Metadata.LengthChange,
		result.Metadata.WordCountChange, result.Metadata.ProcessingMs)))

	return nil
}

// Score renders a quality breakdown
func (r *TerminalReporter) Score(quality scorer.Quality) error {
	s := r.u.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %d/100  grade %s\n",
		s.Header.Render("Quality:"),
		quality.Overall,
		s.Grade(quality.Grade).Render(quality.Grade))
	fmt.Fprintln(r.w)

	names := make([]string, 0, len(quality.Breakdown))
	for name := range quality.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(r.w, "  %-14s %3d  %s\n",
			name, quality.Breakdown[name].Score,
			s.Dim.Render(bar(quality.Breakdown[name].Score)))
	}

	return nil
}

// Analytics renders a ledger snapshot
func (r *TerminalReporter) Analytics(stats ledger.Stats) error {
	s := r.u.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("Analytics"))
	fmt.Fprintf(r.w, "  %-22s %d\n", "Optimizations", stats.Optimizations)
	fmt.Fprintf(r.w, "  %-22s %+.1f points\n", "Average improvement", stats.AverageImprovement)
	fmt.Fprintf(r.w, "  %-22s %.0fs\n", "Time saved (total)", stats.TimeSavings)

	printUsage := func(title string, usage map[string]int) {
		if len(usage) == 0 {
			return
		}
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Subheader.Render(title))
		keys := make([]string, 0, len(usage))
		for k := range usage {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(r.w, "  %-14s %d\n", k, usage[k])
		}
	}

	printUsage("By style", stats.StyleUsage)
	printUsage("By platform", stats.PlatformUsage)

	return nil
}

// bar renders a 20-cell usage bar for a 0-100 score.
func bar(score int) string {
	filled := score / 5
	out := make([]rune, 20)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return string(out)
}
