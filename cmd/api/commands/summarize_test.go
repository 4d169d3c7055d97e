package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilang-summarizer/cmd/api/dto"
	"multilang-summarizer/summarizer"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MONGO_ENABLED", "false")
	t.Setenv("GEMINI_API_KEY", "")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSummarizeFromStdin(t *testing.T) {
	out, err := runCLI(t, "The quick brown fox jumps over lazy dogs.", "summarize", "--length", "short", "--language", "english")
	require.NoError(t, err)

	var resp dto.SummaryResponseDTO
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "The quick brown fox jumps over lazy dogs.", resp.Summary)
	assert.Equal(t, 8, resp.OriginalLength)
	assert.Equal(t, 1.0, resp.CompressionRatio)
	assert.Equal(t, summarizer.MethodExtractive, resp.Method)
	assert.Equal(t, "english", resp.Language)
	assert.Equal(t, 8, resp.Statistics.WordCount)
}

func TestSummarizeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.txt")
	require.NoError(t, os.WriteFile(path, []byte("यह पहला वाक्य है जो काफी लंबा है। यह दूसरा वाक्य भी काफी लंबा है।"), 0o644))

	out, err := runCLI(t, "", "summarize", "--file", path)
	require.NoError(t, err)

	var resp dto.SummaryResponseDTO
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "hindi", resp.Language)
	assert.Contains(t, resp.Summary, "यह पहला वाक्य")
}

func TestSummarizeAbstractiveWithoutKeyFallsBack(t *testing.T) {
	out, err := runCLI(t, "The quick brown fox jumps over lazy dogs.", "summarize", "--method", "abstractive")
	require.NoError(t, err)

	var resp dto.SummaryResponseDTO
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, summarizer.MethodExtractive, resp.Method)
	assert.NotEmpty(t, resp.FallbackReason)
}

func TestSummarizeRejectsInvalidInput(t *testing.T) {
	_, err := runCLI(t, "   ", "summarize")
	assert.ErrorIs(t, err, summarizer.ErrInvalidInput)

	_, err = runCLI(t, "some text here.", "summarize", "--length", "tiny")
	assert.ErrorIs(t, err, summarizer.ErrInvalidInput)

	_, err = runCLI(t, "", "summarize", "--url", "https://a.example", "--pdf", "x.pdf")
	assert.Error(t, err)
}
