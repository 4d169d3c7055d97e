package renderer_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"multilang-summarizer/parser"
	"multilang-summarizer/renderer"
)

// 로컬에 크롬이 있을 때만 실행한다. CHROME_PATH=/path/to/chrome go test ./renderer
func TestRenderHTML(t *testing.T) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("CHROME_PATH is not set")
	}

	html, err := renderer.RenderHTML(context.Background(), "https://go.dev/doc/effective_go", renderer.Options{
		ChromePath: chromePath,
		Timeout:    45 * time.Second,
	})
	if err != nil {
		t.Logf("Failed to render HTML: %v", err)
		return
	}

	article, err := parser.ParseArticle(html, "https://go.dev/doc/effective_go", 50)
	if err != nil {
		t.Logf("Failed to parse article: %v", err)
		return
	}
	assert.Greater(t, len(article.Text), 10000)
}
