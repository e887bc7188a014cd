package analyze

import (
	"strings"

	"github.com/buildsight/bluebook/internal/pdftext"
)

// BuildPrompt assembles the single analysis prompt: the fixed instruction
// block naming the fields we scrape for, followed by the combined text of
// every document. The whole prompt is sent in one request; oversized prompts
// are left to the remote service to reject.
func BuildPrompt(docs []pdftext.Document) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following construction-related PDF content and extract:")
	sb.WriteString("\n1. Contractor name")
	sb.WriteString("\n2. Architect name")
	sb.WriteString("\n3. Designer name")
	sb.WriteString("\n4. Client name")
	sb.WriteString("\n5. Construction elements/resources for each trade")
	sb.WriteString("\n6. Page numbers where each trade's specs/plans appear")
	sb.WriteString("\n7. Project start date")
	sb.WriteString("\n8. Project end date")
	sb.WriteString("\n\nProvide the output in a structured format. Here is the PDF content:\n")
	for i, d := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(d.Text)
	}
	return sb.String()
}
