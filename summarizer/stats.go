package summarizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const wordsPerMinute = 200

var statsBoundary = regexp.MustCompile(`[.!?]+`)

// Statistics 는 원문에 대한 기본 통계이다.
type Statistics struct {
	WordCount           int     `json:"word_count"`
	SentenceCount       int     `json:"sentence_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	CharCount           int     `json:"char_count"`
	UniqueWords         int     `json:"unique_words"`
	ReadingTimeMinutes  float64 `json:"reading_time_minutes"`
}

// Quality 는 Statistics 로부터 계산한 간단한 품질 지표이다.
type Quality struct {
	QualityScore int    `json:"quality_score"`
	Complexity   string `json:"complexity"`
	Readability  string `json:"readability"`
}

func Analyze(text string) Statistics {
	words := strings.Fields(text)

	sentences := 0
	for _, s := range statsBoundary.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	st := Statistics{
		WordCount:          len(words),
		SentenceCount:      sentences,
		CharCount:          utf8.RuneCountInString(text),
		UniqueWords:        len(unique),
		ReadingTimeMinutes: round2(float64(len(words)) / wordsPerMinute),
	}
	if sentences > 0 {
		st.AvgWordsPerSentence = round2(float64(len(words)) / float64(sentences))
	}
	return st
}

// Assess 는 네 가지 조건마다 25점씩 부여한다.
func Assess(st Statistics) Quality {
	score := 0
	if st.WordCount > 50 {
		score += 25
	}
	if st.SentenceCount > 5 {
		score += 25
	}
	if st.AvgWordsPerSentence > 5 && st.AvgWordsPerSentence < 25 {
		score += 25
	}
	if st.WordCount > 0 && float64(st.UniqueWords)/float64(st.WordCount) > 0.3 {
		score += 25
	}

	complexity := "Low"
	switch {
	case st.AvgWordsPerSentence > 15:
		complexity = "High"
	case st.AvgWordsPerSentence > 8:
		complexity = "Medium"
	}

	readability := "Needs Improvement"
	if st.AvgWordsPerSentence >= 5 && st.AvgWordsPerSentence <= 20 {
		readability = "Good"
	}

	return Quality{
		QualityScore: score,
		Complexity:   complexity,
		Readability:  readability,
	}
}
