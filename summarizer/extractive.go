package summarizer

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	MethodExtractive  = "extractive"
	MethodAbstractive = "abstractive"

	ellipsis = "..."
)

// 영어 종결 부호와 힌디어 다리(।)를 모두 문장 경계로 본다.
var sentenceBoundary = regexp.MustCompile(`[.!?।]+`)

// Options 는 추출 요약의 튜닝 상수이다.
type Options struct {
	// PartialThreshold 는 목표 대비 누적 단어 비율이 이 값 미만일 때만
	// 넘치는 문장을 단어 단위로 잘라 붙인다.
	PartialThreshold float64
	// FallbackChars 는 문장 후보가 하나도 없을 때 원문 앞부분을 잘라 쓰는 글자 수이다.
	FallbackChars int
	// MinSentenceChars 보다 짧은 조각은 문장 후보에서 버린다.
	MinSentenceChars int
}

func DefaultOptions() Options {
	return Options{
		PartialThreshold: 0.7,
		FallbackChars:    100,
		MinSentenceChars: 10,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PartialThreshold <= 0 || o.PartialThreshold > 1 {
		o.PartialThreshold = d.PartialThreshold
	}
	if o.FallbackChars <= 0 {
		o.FallbackChars = d.FallbackChars
	}
	if o.MinSentenceChars <= 0 {
		o.MinSentenceChars = d.MinSentenceChars
	}
	return o
}

// Result 는 요약 결과와 기본 통계이다.
type Result struct {
	Summary          string        `json:"summary"`
	OriginalLength   int           `json:"original_length"`
	SummaryLength    int           `json:"summary_length"`
	CompressionRatio float64       `json:"compression_ratio"`
	Method           string        `json:"method"`
	FallbackReason   string        `json:"fallback_reason,omitempty"`
	Elapsed          time.Duration `json:"-"`
}

// ProcessingTime 은 처리 시간을 초 단위(소수 둘째 자리)로 반환한다.
func (r *Result) ProcessingTime() float64 {
	return round2(r.Elapsed.Seconds())
}

// Extractive 는 원문 문장을 앞에서부터 골라 목표 단어 수에 맞추는 요약기다.
// 상태가 없으므로 여러 요청에서 동시에 사용해도 안전하다.
type Extractive struct {
	opts Options
}

func NewExtractive(opts Options) *Extractive {
	return &Extractive{opts: opts.withDefaults()}
}

func (e *Extractive) Options() Options { return e.opts }

// Summarize 는 text 를 class 예산에 맞게 요약한다.
// 단어가 하나도 없으면 ErrInvalidInput 을 반환한다.
func (e *Extractive) Summarize(text string, class LengthClass) (*Result, error) {
	start := time.Now()

	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return nil, fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}
	target := class.TargetWords(wordCount)

	sentences := e.SplitSentences(text)
	selected := e.selectSentences(sentences, target)
	if len(selected) == 0 {
		if len(sentences) > 0 {
			selected = sentences[:1]
		} else {
			selected = []string{truncateGraphemes(text, e.opts.FallbackChars) + ellipsis}
		}
	}

	summary := strings.TrimSpace(strings.Join(selected, ". "))
	summary = ensureTerminal(summary)

	return newResult(wordCount, summary, MethodExtractive, time.Since(start)), nil
}

// SplitSentences 는 종결 부호 기준으로 문장 후보를 나눈다.
// 종결 부호가 전혀 없는 텍스트는 문장 후보가 없는 것으로 본다.
func (e *Extractive) SplitSentences(text string) []string {
	if !sentenceBoundary.MatchString(text) {
		return nil
	}

	var out []string
	for _, part := range sentenceBoundary.Split(text, -1) {
		s := strings.TrimSpace(part)
		if utf8.RuneCountInString(s) < e.opts.MinSentenceChars {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (e *Extractive) selectSentences(sentences []string, target int) []string {
	var selected []string
	current := 0

	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		if current+len(words) <= target {
			selected = append(selected, sentence)
			current += len(words)
			continue
		}

		// 목표의 70% 에도 못 미치면 남은 예산만큼 잘라서라도 채운다.
		if float64(current) < float64(target)*e.opts.PartialThreshold {
			remaining := target - current
			selected = append(selected, strings.Join(words[:remaining], " ")+ellipsis)
		}
		break
	}
	return selected
}

func newResult(originalWords int, summary, method string, elapsed time.Duration) *Result {
	summaryWords := len(strings.Fields(summary))
	return &Result{
		Summary:          summary,
		OriginalLength:   originalWords,
		SummaryLength:    summaryWords,
		CompressionRatio: round2(float64(summaryWords) / float64(originalWords)),
		Method:           method,
		Elapsed:          elapsed,
	}
}

func ensureTerminal(s string) string {
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}

// truncateGraphemes 는 s 를 최대 n 글자(rune)로 자르되 문자소 경계에서만 자른다.
// 데바나가리 모음 기호나 virama 가 자음과 떨어지지 않는다.
func truncateGraphemes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	var b strings.Builder
	runes := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		runes += utf8.RuneCountInString(cluster)
		if runes > n {
			break
		}
		b.WriteString(cluster)
	}
	return b.String()
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
