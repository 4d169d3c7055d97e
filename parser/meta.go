package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// findDocumentTitle 은 og:title → twitter:title → <title> 순서로 제목을 찾는다.
func findDocumentTitle(doc *html.Node) string {
	if title := findMetaContent(doc, "property", []string{"og:title"}); title != "" {
		return strings.TrimSpace(title)
	}
	if title := findMetaContent(doc, "name", []string{"twitter:title", "title"}); title != "" {
		return strings.TrimSpace(title)
	}
	return strings.TrimSpace(findTitleElement(doc))
}

func findMetaContent(root *html.Node, key string, candidates []string) string {
	candidateSet := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		candidateSet[strings.ToLower(c)] = struct{}{}
	}

	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "meta" {
			var attrValue string
			var content string
			for _, a := range n.Attr {
				keyLower := strings.ToLower(a.Key)
				if keyLower == strings.ToLower(key) {
					attrValue = strings.ToLower(a.Val)
				} else if keyLower == "content" {
					content = a.Val
				}
			}

			if content != "" && attrValue != "" {
				if _, ok := candidateSet[attrValue]; ok {
					result = content
					return
				}
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}

func findTitleElement(root *html.Node) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			result = n.FirstChild.Data
			return
		}
		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}
