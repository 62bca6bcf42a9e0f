package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/cssckit/cssc/output"
)

// slowThreshold marks stages worth calling out in a report.
const slowThreshold = 100 * time.Millisecond

// formatReport writes one line per stage plus a total. Styling goes
// through output.Styles, which strips itself on non-terminal writers.
func formatReport(w io.Writer, stages []stage) {
	styles := output.NewStyles(w)

	var total time.Duration
	for _, s := range stages {
		timing := styles.Timing(formatDuration(s.duration), s.duration >= slowThreshold)
		_, _ = fmt.Fprintf(w, "%-12s %s\n", s.name, timing)
		total += s.duration
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", styles.Keyword(fmt.Sprintf("%-12s", "total")), formatDuration(total))
}

// formatDuration renders a duration at millisecond-friendly precision.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
