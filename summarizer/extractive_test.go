package summarizer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilang-summarizer/summarizer"
)

func newExtractive() *summarizer.Extractive {
	return summarizer.NewExtractive(summarizer.DefaultOptions())
}

func TestSummarizeSingleShortSentence(t *testing.T) {
	text := "The quick brown fox jumps over lazy dogs."

	res, err := newExtractive().Summarize(text, summarizer.Short)
	require.NoError(t, err)

	assert.Equal(t, text, res.Summary)
	assert.Equal(t, 8, res.OriginalLength)
	assert.Equal(t, 8, res.SummaryLength)
	assert.Equal(t, 1.0, res.CompressionRatio)
	assert.Equal(t, summarizer.MethodExtractive, res.Method)
}

func TestSummarizeEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		res, err := newExtractive().Summarize(text, summarizer.Medium)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, summarizer.ErrInvalidInput)
	}
}

func TestSummarizeWithoutTerminalPunctuation(t *testing.T) {
	text := strings.Repeat("lorem ipsum ", 20)

	res, err := newExtractive().Summarize(text, summarizer.Short)
	require.NoError(t, err)

	assert.Equal(t, text[:100]+"...", res.Summary)
	assert.Equal(t, 40, res.OriginalLength)
}

func TestSummarizeFallbackKeepsDevanagariClusters(t *testing.T) {
	// 100번째 글자(क)와 101번째 글자(ि 모음 기호)가 한 문자소를 이룬다.
	text := strings.Repeat("a", 99) + "कि बात"

	res, err := newExtractive().Summarize(text, summarizer.Short)
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("a", 99)+"...", res.Summary)
	assert.NotContains(t, res.Summary, "क")
}

func TestSummarizeTextShorterThanMinimumSentence(t *testing.T) {
	res, err := newExtractive().Summarize("Hi there.", summarizer.Short)
	require.NoError(t, err)

	assert.Equal(t, "Hi there....", res.Summary)
	assert.Equal(t, 2, res.SummaryLength)
	assert.Equal(t, 1.0, res.CompressionRatio)
}

const (
	tenWords     = "alpha beta gamma delta epsilon zeta eta theta iota kappa"
	fifteenWords = "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen"
)

func TestSummarizeTruncatesWhenBelowPartialThreshold(t *testing.T) {
	text := tenWords + ". " + fifteenWords + "."

	res, err := newExtractive().Summarize(text, summarizer.Short)
	require.NoError(t, err)

	assert.Equal(t, tenWords+". one two three four five six seven eight nine ten...", res.Summary)
	assert.Equal(t, 20, res.SummaryLength)
	assert.Equal(t, 25, res.OriginalLength)
	assert.Equal(t, 0.8, res.CompressionRatio)
}

func TestSummarizeStopsAbovePartialThreshold(t *testing.T) {
	// 15 단어를 채운 뒤(목표 20의 75%) 다음 문장은 넣지 않는다.
	text := fifteenWords + ". " + fifteenWords + "."

	res, err := newExtractive().Summarize(text, summarizer.Short)
	require.NoError(t, err)

	assert.Equal(t, fifteenWords+".", res.Summary)
	assert.Equal(t, 15, res.SummaryLength)
}

func TestSummarizeHonorsCustomOptions(t *testing.T) {
	ext := summarizer.NewExtractive(summarizer.Options{
		PartialThreshold: 0.3,
		FallbackChars:    10,
	})

	res, err := ext.Summarize(tenWords+". "+fifteenWords+".", summarizer.Short)
	require.NoError(t, err)
	assert.Equal(t, tenWords+".", res.Summary)

	res, err = ext.Summarize("no punctuation in this text at all", summarizer.Short)
	require.NoError(t, err)
	assert.Equal(t, "no punctua...", res.Summary)

	assert.Equal(t, 10, ext.Options().MinSentenceChars)
}

func TestSummarizeHindiSentences(t *testing.T) {
	text := "यह पहला वाक्य है जो काफी लंबा है। यह दूसरा वाक्य भी काफी लंबा है।"

	res, err := newExtractive().Summarize(text, summarizer.Short)
	require.NoError(t, err)

	assert.Equal(t, "यह पहला वाक्य है जो काफी लंबा है. यह दूसरा वाक्य भी काफी लंबा है.", res.Summary)
	assert.Equal(t, 15, res.OriginalLength)
	assert.Equal(t, 15, res.SummaryLength)
}

func TestSplitSentencesDropsShortFragments(t *testing.T) {
	got := newExtractive().SplitSentences("Yes! This sentence is long enough?? Ok. Another fine sentence here")
	assert.Equal(t, []string{
		"This sentence is long enough",
		"Another fine sentence here",
	}, got)
}

func longDocument(sentences int) string {
	var b strings.Builder
	for i := 0; i < sentences; i++ {
		fmt.Fprintf(&b, "Sentence number %d talks about topic %d and adds a few extra words. ", i, i%7)
	}
	return b.String()
}

func TestSummarizeBudgetAndMonotonicity(t *testing.T) {
	text := longDocument(60)
	ext := newExtractive()

	prev := 0
	for _, class := range []summarizer.LengthClass{summarizer.Short, summarizer.Medium, summarizer.Long} {
		res, err := ext.Summarize(text, class)
		require.NoError(t, err)

		target := class.TargetWords(res.OriginalLength)
		assert.LessOrEqual(t, res.SummaryLength, target, "class %s", class)
		assert.GreaterOrEqual(t, res.SummaryLength, prev, "class %s", class)
		assert.Regexp(t, `[.!?]$`, res.Summary)
		prev = res.SummaryLength
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	text := longDocument(25)
	ext := newExtractive()

	first, err := ext.Summarize(text, summarizer.Medium)
	require.NoError(t, err)
	second, err := ext.Summarize(text, summarizer.Medium)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.OriginalLength, second.OriginalLength)
	assert.Equal(t, first.SummaryLength, second.SummaryLength)
	assert.Equal(t, first.CompressionRatio, second.CompressionRatio)
}
