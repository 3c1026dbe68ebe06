package journal

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/signalscope/pkg/id"
)

// FormatSignalOrg renders a SignalRecord as an Org-mode entry. Structured
// facts go in the PROPERTIES drawer; reasons become a plain list and a
// Review heading is left for notes.
func FormatSignalOrg(r SignalRecord) string {
	heading := fmt.Sprintf("** Signal: %s %s %s (%s)",
		r.Symbol, strings.ToUpper(r.Direction.String()), r.AsOf.Format("2006-01-02"), id.Short(r.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", r.ID))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", r.Symbol))
	b.WriteString(fmt.Sprintf(":AS_OF: %s\n", r.AsOf.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", r.Direction))
	b.WriteString(fmt.Sprintf(":STRENGTH: %s\n", r.Strength))
	b.WriteString(fmt.Sprintf(":SCORE: %.1f\n", r.Score))
	if len(r.Patterns) > 0 {
		b.WriteString(fmt.Sprintf(":PATTERNS: %s\n", strings.Join(r.Patterns, ", ")))
	}
	b.WriteString(fmt.Sprintf(":CREATED: [%s]\n", r.CreatedAt.UTC().Format("2006-01-02 Mon 15:04")))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Reasons\n")
	if len(r.Reasons) == 0 {
		b.WriteString("- \n")
	}
	for _, reason := range r.Reasons {
		b.WriteString("- " + reason + "\n")
	}
	b.WriteString("\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatSignalsOrg renders multiple records separated by blank lines.
func FormatSignalsOrg(recs []SignalRecord) string {
	var b strings.Builder
	for i, r := range recs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatSignalOrg(r))
	}
	return b.String()
}
