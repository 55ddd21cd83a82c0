package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

const pdfTitle = "Sentiment Intelligence Report"

// The core fonts are cp1252, which lacks these Turkish letters.
var turkishFold = strings.NewReplacer(
	"ş", "s", "Ş", "S",
	"ğ", "g", "Ğ", "G",
	"ı", "i", "İ", "I",
)

type pdfLine struct {
	text    string
	heading bool
}

// pdfLines flattens markdown: headings lose their #, other lines lose ** and __, blanks go.
func pdfLines(markdown string) []pdfLine {
	var out []pdfLine
	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "#") {
			out = append(out, pdfLine{text: strings.TrimSpace(strings.TrimLeft(line, "#")), heading: true})
			continue
		}
		line = strings.NewReplacer("**", "", "__", "").Replace(line)
		if line != "" {
			out = append(out, pdfLine{text: line})
		}
	}
	return out
}

// WritePDF renders the key metrics followed by the markdown report.
func WritePDF(w io.Writer, report Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(turkishFold.Replace(s)) }

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 10, pdfTitle, "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Key Metrics", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Brand Health Score: %d", report.BrandHealthScore), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Average Sentiment: %.3f", report.SentimentOverview.AverageScore), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Negative Ratio: %.2f", report.SentimentOverview.NegativeRatio), "", 1, "", false, 0, "")
	pdf.Ln(5)

	for _, line := range pdfLines(report.ReportMarkdown) {
		if line.heading {
			pdf.SetFont("Arial", "B", 12)
			pdf.Ln(2)
			pdf.MultiCell(0, 7, text(line.text), "", "", false)
			pdf.SetFont("Arial", "", 11)
			continue
		}
		pdf.MultiCell(0, 6, text(line.text), "", "", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}
