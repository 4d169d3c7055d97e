package exporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilang-summarizer/config"
)

func newTestExporter() *Exporter {
	e := New(config.ExportConfig{UnicodeFontPath: "testdata/missing-font.ttf"})
	e.now = func() time.Time { return time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC) }
	return e
}

var sample = Document{
	Title:    "Monsoon Report",
	Summary:  "The monsoon reached Kerala three days early. Farmers welcomed the rain.",
	Language: "english",
}

func TestExportMarkdown(t *testing.T) {
	out, err := newTestExporter().Export(FormatMarkdown, sample)
	require.NoError(t, err)

	want := "# Monsoon Report\n\n" +
		"The monsoon reached Kerala three days early. Farmers welcomed the rain.\n\n" +
		"---\n\n" +
		"*Generated by MultiLanguage AI Text Summarizer*  \n" +
		"*Date: 2026-05-04 09:30*\n"
	assert.Equal(t, want, string(out))
}

func TestExportPDF(t *testing.T) {
	out, err := newTestExporter().Export(FormatPDF, sample)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportPDFWithoutUnicodeFontKeepsWorking(t *testing.T) {
	doc := Document{Title: "सारांश", Summary: "यह एक परीक्षण सारांश है।", Language: "hindi"}

	out, err := newTestExporter().Export(FormatPDF, doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportWord(t *testing.T) {
	out, err := newTestExporter().Export(FormatWord, sample)
	require.NoError(t, err)
	// docx 는 zip 컨테이너이다.
	assert.True(t, bytes.HasPrefix(out, []byte("PK")))
}

func TestExportDefaultsTitle(t *testing.T) {
	out, err := newTestExporter().Export(FormatMarkdown, Document{Summary: "Body text."})
	require.NoError(t, err)
	assert.Contains(t, string(out), "# Summary\n")
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := newTestExporter().Export(Format("odt"), sample)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Monsoon_Report.pdf", Filename("Monsoon Report", FormatPDF))
	assert.Equal(t, "Summary.md", Filename("  ", FormatMarkdown))
	assert.Equal(t, "a_b_c.docx", Filename(`a/b "c`, FormatWord))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType(FormatPDF))
	assert.Equal(t, "application/octet-stream", ContentType(Format("zip")))
}
