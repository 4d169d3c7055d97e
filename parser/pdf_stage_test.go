package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseStageTextCountsRunes(t *testing.T) {
	// 17 글자지만 UTF-8 로는 51 바이트다.
	plain := strings.Repeat("क", 17)
	require.Equal(t, 51, len(plain))
	require.Equal(t, 17, utf8.RuneCountInString(plain))

	rows := "भारत एक विशाल देश है और यहाँ अनेक भाषाएँ बोली जाती हैं"
	called := false
	got := chooseStageText(plain, func() string {
		called = true
		return rows
	})

	assert.True(t, called)
	assert.Equal(t, rows, got)
}

func TestChooseStageTextKeepsLongPlainText(t *testing.T) {
	plain := strings.Repeat("यह पाठ है ", 10)
	got := chooseStageText(plain, func() string {
		t.Fatal("row extraction should not run")
		return ""
	})
	assert.Equal(t, plain, got)
}

func TestChooseStageTextKeepsPlainWhenRowsShorter(t *testing.T) {
	got := chooseStageText("short plain text", func() string { return "row" })
	assert.Equal(t, "short plain text", got)
}
