package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Nirmala UI"
	docxFontSize = 12
)

// Word 는 제목, 요약, 생성 정보 문단으로 된 docx 문서를 만든다.
func (e *Exporter) Word(doc Document) ([]byte, error) {
	d, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create docx: %w", err)
	}

	addRun(d.AddParagraph(""), doc.Title, true, 20)
	addRun(d.AddParagraph(""), doc.Summary, false, docxFontSize)
	d.AddParagraph("")
	addRun(d.AddParagraph(""), generatedBy, false, 10)
	addRun(d.AddParagraph(""), "Date: "+e.timestamp(), false, 10)

	// godocx 는 파일 경로로만 저장하므로 임시 디렉터리를 거친다.
	dir, err := os.MkdirTemp("", "summary-docx-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "summary.docx")
	if err := d.SaveTo(path); err != nil {
		return nil, fmt.Errorf("save docx: %w", err)
	}
	return os.ReadFile(path)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
