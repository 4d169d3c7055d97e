// Package exporter 는 요약 결과를 PDF, Word(docx), Markdown 문서로 변환한다.
package exporter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"multilang-summarizer/config"
)

const (
	DefaultTitle = "Summary"
	generatedBy  = "Generated by MultiLanguage AI Text Summarizer"
	dateLayout   = "2006-01-02 15:04"
)

// Format 은 내보내기 형식이며 값은 파일 확장자와 같다.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatWord     Format = "docx"
	FormatMarkdown Format = "md"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

var contentTypes = map[Format]string{
	FormatPDF:      "application/pdf",
	FormatWord:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FormatMarkdown: "text/markdown; charset=utf-8",
}

// Document 는 내보낼 요약 한 건이다.
type Document struct {
	Title    string
	Summary  string
	Language string
}

type Exporter struct {
	fontPath string
	now      func() time.Time
}

// New 는 cfg.UnicodeFontPath 의 TTF 폰트를 PDF 본문에 사용하는 Exporter 를 만든다.
// 폰트 파일이 없으면 PDF 는 기본 코어 폰트로 작성된다.
func New(cfg config.ExportConfig) *Exporter {
	return &Exporter{
		fontPath: cfg.UnicodeFontPath,
		now:      time.Now,
	}
}

func (e *Exporter) Export(format Format, doc Document) ([]byte, error) {
	if strings.TrimSpace(doc.Title) == "" {
		doc.Title = DefaultTitle
	}

	switch format {
	case FormatPDF:
		return e.PDF(doc)
	case FormatWord:
		return e.Word(doc)
	case FormatMarkdown:
		return e.Markdown(doc), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func ContentType(format Format) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

var filenameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", `"`, "", "\n", "", "\r", "")

// Filename 은 제목의 공백을 '_' 로 바꾼 다운로드 파일명이다.
func Filename(title string, format Format) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	return filenameReplacer.Replace(title) + "." + string(format)
}

func (e *Exporter) timestamp() string {
	return e.now().Format(dateLayout)
}
