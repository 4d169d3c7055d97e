package summarizer

import (
	"fmt"
	"strings"
)

// LengthClass 는 요약 길이 구간(short/medium/long)이다.
type LengthClass string

const (
	Short  LengthClass = "short"
	Medium LengthClass = "medium"
	Long   LengthClass = "long"
)

// budget 은 구간별 목표 단어 수 계산식 word_count/divisor 를 [floor, ceil] 로 자른 값이다.
type budget struct {
	divisor int
	floor   int
	ceil    int
}

var budgets = map[LengthClass]budget{
	Short:  {divisor: 8, floor: 20, ceil: 50},
	Medium: {divisor: 5, floor: 40, ceil: 100},
	Long:   {divisor: 3, floor: 80, ceil: 200},
}

// ParseLengthClass 는 API 입력값을 LengthClass 로 변환한다.
// 빈 값과 "auto" 는 long 예산을 사용한다.
func ParseLengthClass(s string) (LengthClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return Short, nil
	case "medium":
		return Medium, nil
	case "long", "auto", "":
		return Long, nil
	default:
		return "", fmt.Errorf("%w: unknown summary_length %q", ErrInvalidInput, s)
	}
}

// TargetWords 는 원문 단어 수에 대한 목표 요약 단어 수를 반환한다.
// 원문이 아무리 짧아도 floor 아래로 내려가지 않는다.
func (c LengthClass) TargetWords(wordCount int) int {
	b, ok := budgets[c]
	if !ok {
		b = budgets[Long]
	}
	return min(b.ceil, max(b.floor, wordCount/b.divisor))
}

// Bounds 는 구간의 최소/최대 단어 수이다. 생성형 요약의 길이 제약으로 사용한다.
func (c LengthClass) Bounds() (minWords, maxWords int) {
	b, ok := budgets[c]
	if !ok {
		b = budgets[Long]
	}
	return b.floor, b.ceil
}
