package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// 한 단계의 추출 결과가 이 글자 수를 넘으면 다음 단계는 건너뛴다.
const minStageChars = 50

var (
	ErrInvalidPDF = errors.New("invalid pdf")
	// ErrNoReadableText 는 스캔본처럼 텍스트 레이어가 없는 PDF 에서 발생한다.
	ErrNoReadableText = errors.New("no readable text found in pdf")
)

type PDFText struct {
	Text      string
	PageCount int
	PagesRead int
	Truncated bool
}

// ExtractPDFText 는 앞에서부터 최대 maxPages 페이지의 텍스트를 추출한다.
// 페이지별 plain text 를 먼저 시도하고, 결과가 부실하면 행 단위 재구성 결과와 비교해 긴 쪽을 쓴다.
func ExtractPDFText(data []byte, maxPages int) (out *PDFText, err error) {
	// ledongthuc/pdf 는 손상된 xref 등에서 panic 을 낸다.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	total := reader.NumPage()
	if total == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrInvalidPDF)
	}

	limit := total
	if maxPages > 0 && limit > maxPages {
		limit = maxPages
	}

	text := chooseStageText(extractPlainText(reader, limit), func() string {
		return extractRowText(reader, limit)
	})
	if text == "" {
		return nil, ErrNoReadableText
	}

	return &PDFText{
		Text:      text,
		PageCount: total,
		PagesRead: limit,
		Truncated: limit < total,
	}, nil
}

// chooseStageText 는 plain 이 minStageChars 글자(rune)를 넘으면 그대로 쓰고,
// 아니면 행 단위 결과를 계산해 더 긴 쪽을 고른다.
func chooseStageText(plain string, rows func() string) string {
	plainLen := utf8.RuneCountInString(plain)
	if plainLen > minStageChars {
		return plain
	}
	if r := rows(); utf8.RuneCountInString(r) > plainLen {
		return r
	}
	return plain
}

func extractPlainText(reader *pdf.Reader, limit int) string {
	var parts []string
	for i := 1; i <= limit; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			font := page.Font(name)
			fonts[name] = &font
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func extractRowText(reader *pdf.Reader, limit int) string {
	var lines []string
	for i := 1; i <= limit; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			if s := strings.TrimSpace(line.String()); s != "" {
				lines = append(lines, s)
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
