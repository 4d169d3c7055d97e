package parser_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilang-summarizer/parser"
)

func buildPDF(t *testing.T, pages int) []byte {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		doc.AddPage()
		doc.Cell(0, 10, fmt.Sprintf("Page %d of the monsoon report contains enough readable text", i))
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestExtractPDFText(t *testing.T) {
	out, err := parser.ExtractPDFText(buildPDF(t, 2), 15)
	require.NoError(t, err)

	assert.Equal(t, 2, out.PageCount)
	assert.Equal(t, 2, out.PagesRead)
	assert.False(t, out.Truncated)
	assert.Contains(t, out.Text, "monsoon report")
}

func TestExtractPDFTextPageLimit(t *testing.T) {
	out, err := parser.ExtractPDFText(buildPDF(t, 3), 2)
	require.NoError(t, err)

	assert.Equal(t, 3, out.PageCount)
	assert.Equal(t, 2, out.PagesRead)
	assert.True(t, out.Truncated)
	assert.NotContains(t, out.Text, "Page 3")
}

func TestExtractPDFTextInvalidInput(t *testing.T) {
	_, err := parser.ExtractPDFText([]byte("definitely not a pdf"), 15)
	assert.ErrorIs(t, err, parser.ErrInvalidPDF)

	_, err = parser.ExtractPDFText(nil, 15)
	assert.ErrorIs(t, err, parser.ErrInvalidPDF)
}

func TestExtractPDFTextWithoutTextLayer(t *testing.T) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.Rect(10, 10, 50, 50, "D")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	_, err := parser.ExtractPDFText(buf.Bytes(), 15)
	assert.ErrorIs(t, err, parser.ErrNoReadableText)
}
