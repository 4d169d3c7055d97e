// Package summarizer 는 추출 요약(문장 선택)과 LLM 기반 생성 요약을 제공한다.
package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// Service 는 요청의 method 값에 따라 추출/생성 요약기를 고른다.
// 두 요약기 모두 호출자가 소유하며 요청 간에 공유된다.
type Service struct {
	extractive  *Extractive
	abstractive *Abstractive
}

func NewService(extractive *Extractive, abstractive *Abstractive) *Service {
	return &Service{extractive: extractive, abstractive: abstractive}
}

// Request 는 한 번의 요약 요청이다.
type Request struct {
	Text     string
	Length   LengthClass
	Language Language
	Method   string
}

// ParseMethod 는 빈 값을 extractive 로 취급한다.
func ParseMethod(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case MethodExtractive, "":
		return MethodExtractive, nil
	case MethodAbstractive:
		return MethodAbstractive, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalidInput, s)
	}
}

func (s *Service) Summarize(ctx context.Context, req Request) (*Result, error) {
	if req.Method == MethodAbstractive && s.abstractive != nil {
		return s.abstractive.Summarize(ctx, req.Text, req.Length, req.Language)
	}
	return s.extractive.Summarize(req.Text, req.Length)
}
