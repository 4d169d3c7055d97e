package summarizer

import (
	"fmt"
	"strings"
)

// Language 는 요약 결과 언어이다.
type Language string

const (
	Hindi   Language = "hindi"
	English Language = "english"
)

// ParseLanguage 는 빈 값을 hindi 로 취급한다.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hindi", "hi", "":
		return Hindi, nil
	case "english", "en":
		return English, nil
	default:
		return "", fmt.Errorf("%w: unknown language %q", ErrInvalidInput, s)
	}
}

// Code 는 ISO 639-1 코드이다(자막/기사 추출 언어 힌트로 사용).
func (l Language) Code() string {
	if l == English {
		return "en"
	}
	return "hi"
}

func (l Language) DisplayName() string {
	if l == English {
		return "English"
	}
	return "Hindi"
}
