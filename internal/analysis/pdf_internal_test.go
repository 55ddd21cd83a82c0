package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDFLines(t *testing.T) {
	t.Parallel()

	md := "# Genel Durum\n\n  **Fatura** sorunları __artıyor__  \n## Öneriler\n- Kargo\n"
	want := []pdfLine{
		{text: "Genel Durum", heading: true},
		{text: "Fatura sorunları artıyor"},
		{text: "Öneriler", heading: true},
		{text: "- Kargo"},
	}
	assert.Equal(t, want, pdfLines(md))
	assert.Empty(t, pdfLines(""))
}
