package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

const DefaultTitle = "Untitled Article"

// ErrNoContent 는 모든 추출기가 min 글자 수 이상의 본문을 찾지 못한 경우이다.
var ErrNoContent = errors.New("no article content")

type ParsedArticle struct {
	Title     string
	Text      string
	Extractor string
}

type extractor struct {
	name string
	run  func(doc *html.Node, rawHTML string, pageURL *url.URL) (*ParsedArticle, error)
}

// readability → trafilatura → goose → 텍스트 노드 순서로 시도한다.
var extractors = []extractor{
	{name: "readability", run: parseWithReadability},
	{name: "trafilatura", run: parseWithTrafilatura},
	{name: "goose", run: parseWithGoose},
	{name: "html", run: parseTextNodes},
}

// ParseArticle 은 HTML 에서 기사 본문과 제목을 추출한다.
// 앞선 추출기의 결과가 minChars 글자 미만이면 다음 추출기로 넘어간다.
func ParseArticle(htmlStr string, pageURL string, minChars int) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var base *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			base = u
		}
	}

	title := findDocumentTitle(doc)

	var errs []error
	for _, ex := range extractors {
		article, err := ex.run(doc, htmlStr, base)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ex.name, err))
			continue
		}

		article.Text = normalizeText(article.Text)
		if utf8.RuneCountInString(article.Text) < minChars {
			continue
		}

		article.Extractor = ex.name
		article.Title = strings.TrimSpace(article.Title)
		if article.Title == "" {
			article.Title = title
		}
		if article.Title == "" {
			article.Title = DefaultTitle
		}
		return article, nil
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoContent, errors.Join(errs...))
	}
	return nil, ErrNoContent
}

func parseWithReadability(doc *html.Node, _ string, pageURL *url.URL) (*ParsedArticle, error) {
	article, err := readability.FromDocument(doc, pageURL)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}

func parseWithTrafilatura(_ *html.Node, rawHTML string, pageURL *url.URL) (*ParsedArticle, error) {
	opts := trafilatura.Options{
		OriginalURL: pageURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}

func parseWithGoose(_ *html.Node, rawHTML string, pageURL *url.URL) (article *ParsedArticle, err error) {
	// goose 는 일부 비정상 문서에서 panic 을 낸다.
	defer func() {
		if r := recover(); r != nil {
			article, err = nil, fmt.Errorf("goose panic: %v", r)
		}
	}()

	link := ""
	if pageURL != nil {
		link = pageURL.String()
	}

	g := goose.New()
	extracted, err := g.ExtractFromRawHTML(rawHTML, link)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title: extracted.Title,
		Text:  extracted.CleanedText,
	}, nil
}

// parseTextNodes 는 script/style 을 제외한 모든 텍스트 노드를 줄 단위로 모은다.
func parseTextNodes(doc *html.Node, _ string, _ *url.URL) (*ParsedArticle, error) {
	var b strings.Builder

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head", "nav", "footer":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}

	f(doc)
	return &ParsedArticle{Text: b.String()}, nil
}

// normalizeText 는 빈 줄을 제거하고 줄 앞뒤 공백을 정리한다.
func normalizeText(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
