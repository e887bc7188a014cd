package report

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/buildsight/bluebook/internal/analyze"
)

// WritePDF renders the same content as Render into a minimal one-column PDF.
// Heading lines (leading '#') get a larger bold font; everything else is
// body text. No attempt at real layout.
func WritePDF(res *analyze.AnalysisResult, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(Render(res)))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(5)
			continue
		}
		if strings.HasPrefix(s, "#") {
			text := strings.TrimSpace(strings.TrimLeft(s, "#"))
			if text == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		pdf.MultiCell(0, 5, s, "", "L", false)
	}

	return pdf.OutputFileAndClose(outPath)
}
