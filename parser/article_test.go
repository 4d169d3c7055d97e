package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilang-summarizer/parser"
)

const articleHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Monsoon Arrives Early</title>
  <meta property="og:title" content="Monsoon Arrives Early">
  <script>var tracking = "ignore me";</script>
</head>
<body>
  <nav><a href="/">Home</a> <a href="/weather">Weather</a></nav>
  <article>
    <h1>Monsoon Arrives Early</h1>
    <p>The southwest monsoon reached the Kerala coast three days ahead of schedule this year, according to the national weather office.
    Farmers across the southern states welcomed the early rain after a long and unusually hot summer season.</p>
    <p>Meteorologists expect the rain to advance steadily northwards over the next two weeks, covering most of central India by the end of June.
    Reservoir levels, which had fallen sharply in May, are expected to recover once the heavy showers set in.</p>
    <p>Officials nevertheless warned coastal districts to prepare for localized flooding and advised fishermen not to venture into the sea.</p>
  </article>
  <footer>Copyright 2026</footer>
</body>
</html>`

func TestParseArticle(t *testing.T) {
	article, err := parser.ParseArticle(articleHTML, "https://news.example.com/monsoon", 50)
	require.NoError(t, err)

	assert.NotEmpty(t, article.Extractor)
	assert.Contains(t, article.Title, "Monsoon Arrives Early")
	assert.Contains(t, article.Text, "Kerala coast")
	assert.NotContains(t, article.Text, "ignore me")
}

func TestParseArticleWithoutTitle(t *testing.T) {
	html := `<html><body><div>` + strings.Repeat("<span>short words</span> ", 30) + `</div></body></html>`

	article, err := parser.ParseArticle(html, "", 50)
	require.NoError(t, err)

	assert.Contains(t, article.Text, "short words")
	assert.Equal(t, parser.DefaultTitle, article.Title)
}

func TestParseArticleWithoutContent(t *testing.T) {
	_, err := parser.ParseArticle(`<html><head><title>Empty</title></head><body></body></html>`, "", 50)
	assert.ErrorIs(t, err, parser.ErrNoContent)

	_, err = parser.ParseArticle(articleHTML, "", 1_000_000)
	assert.ErrorIs(t, err, parser.ErrNoContent)
}
