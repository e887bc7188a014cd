// Package report renders an analysis result for display: plain text on the
// terminal or a file, and optionally the same content as a simple PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/buildsight/bluebook/internal/analyze"
)

// Render produces the plain-text view of a result, mirroring the field
// order the tool has always displayed: the scalar fields first, then each
// trade with its resource lines and page citations in reply order.
func Render(res *analyze.AnalysisResult) string {
	var sb strings.Builder
	sb.WriteString("# Analysis Results\n\n")
	fmt.Fprintf(&sb, "Contractor: %s\n", res.Contractor)
	fmt.Fprintf(&sb, "Architect: %s\n", res.Architect)
	fmt.Fprintf(&sb, "Designer: %s\n", res.Designer)
	fmt.Fprintf(&sb, "Client: %s\n", res.Client)
	fmt.Fprintf(&sb, "Project Start Date: %s\n", res.StartDate)
	fmt.Fprintf(&sb, "Project End Date: %s\n", res.EndDate)
	sb.WriteString("\n# Trades and Resources\n")
	for _, name := range res.TradeNames {
		entry := res.Trades[name]
		fmt.Fprintf(&sb, "\nTrade: %s\n", name)
		fmt.Fprintf(&sb, "Resources: %s\n", strings.Join(entry.Resources, ", "))
		fmt.Fprintf(&sb, "Page Numbers: %s\n", strings.Join(entry.Pages, ", "))
	}
	return sb.String()
}
