package exporter

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

const unicodeFamily = "NotoSans"

func (e *Exporter) PDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(generatedBy, true)
	pdf.AddPage()

	// 코어 폰트는 cp1252 만 표현할 수 있다. 데바나가리는 TTF 폰트가 있어야 출력된다.
	family, style := "Arial", "B"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if e.hasUnicodeFont() {
		pdf.AddUTF8Font(unicodeFamily, "", e.fontPath)
		family, style = unicodeFamily, ""
		tr = func(s string) string { return s }
	}

	pdf.SetFont(family, style, 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont(family, "", 12)
	pdf.MultiCell(0, 8, tr(doc.Summary), "", "L", false)

	pdf.Ln(20)
	pdf.SetFont("Arial", "I", 8)
	footer := fmt.Sprintf("%s - %s", generatedBy, e.timestamp())
	pdf.CellFormat(0, 10, footer, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("create pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) hasUnicodeFont() bool {
	if e.fontPath == "" {
		return false
	}
	info, err := os.Stat(e.fontPath)
	return err == nil && !info.IsDir()
}
