package summarizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilang-summarizer/summarizer"
)

func TestServiceDispatchesByMethod(t *testing.T) {
	gen := &fakeGenerator{output: "Go is a simple language for building scalable systems"}
	svc := summarizer.NewService(
		newExtractive(),
		summarizer.NewAbstractiveWithGenerator(gen, nil, newExtractive()),
	)

	res, err := svc.Summarize(context.Background(), summarizer.Request{
		Text:   sampleArticle,
		Length: summarizer.Short,
		Method: summarizer.MethodExtractive,
	})
	require.NoError(t, err)
	assert.Equal(t, summarizer.MethodExtractive, res.Method)
	assert.Zero(t, gen.calls)

	res, err = svc.Summarize(context.Background(), summarizer.Request{
		Text:     sampleArticle,
		Length:   summarizer.Short,
		Language: summarizer.English,
		Method:   summarizer.MethodAbstractive,
	})
	require.NoError(t, err)
	assert.Equal(t, summarizer.MethodAbstractive, res.Method)
	assert.Equal(t, 1, gen.calls)
}

func TestServiceWithoutAbstractiveUsesExtractive(t *testing.T) {
	svc := summarizer.NewService(newExtractive(), nil)

	res, err := svc.Summarize(context.Background(), summarizer.Request{
		Text:   sampleArticle,
		Length: summarizer.Long,
		Method: summarizer.MethodAbstractive,
	})
	require.NoError(t, err)
	assert.Equal(t, summarizer.MethodExtractive, res.Method)
}
