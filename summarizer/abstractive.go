package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"multilang-summarizer/config"
	"multilang-summarizer/quota"
)

const (
	// 이 단어 수를 넘는 입력은 chunkWords 단위로 나눠 요약한 뒤 다시 요약한다.
	chunkThreshold = 1000
	chunkWords     = 800
	// 모델 입력 상한. 그 이후 단어는 버린다.
	maxInputWords = 3000
	// 이보다 짧은 모델 출력은 실패로 보고 추출 요약으로 대체한다.
	minOutputWords = 5
)

const SYSTEM_INSTRUCTION = `
You are a summarization assistant for articles, documents and video transcripts.
Summarize the provided text in %s.
The summary MUST contain between %d and %d words.
Keep only the main points, in the order they appear in the text.
Respond with the summary as plain text only. Do NOT use markdown, headings, bullet points or quotes.
`

// Generator 는 시스템 지시문과 입력으로 텍스트를 생성하는 모델 클라이언트이다.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", fmt.Errorf("empty response from %s", g.model)
	}
	return result.Text(), nil
}

// Abstractive 는 LLM 으로 요약을 생성한다.
// 모델 클라이언트는 첫 호출 시점에 한 번만 만들어지며, 실패하거나 출력이 부실하면
// 추출 요약으로 대체한다. 핸들러에 명시적으로 주입해서 사용한다.
type Abstractive struct {
	limiter  *quota.Limiter
	fallback *Extractive

	once         sync.Once
	gen          Generator
	initErr      error
	newGenerator func(ctx context.Context) (Generator, error)
}

// NewAbstractive 는 Gemini 기반 요약기를 만든다. 클라이언트 생성은 첫 요청까지 미룬다.
func NewAbstractive(cfg config.LLMConfig, limiter *quota.Limiter, fallback *Extractive) *Abstractive {
	return &Abstractive{
		limiter:  limiter,
		fallback: fallback,
		newGenerator: func(ctx context.Context) (Generator, error) {
			if cfg.APIKey == "" {
				return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrAbstractiveUnavailable)
			}
			if cfg.Provider != "" && cfg.Provider != "google" {
				return nil, fmt.Errorf("%w: unsupported LLM provider: %s", ErrAbstractiveUnavailable, cfg.Provider)
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  cfg.APIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrAbstractiveUnavailable, err)
			}
			return &geminiGenerator{client: client, model: cfg.ModelName}, nil
		},
	}
}

// NewAbstractiveWithGenerator 는 이미 만들어진 Generator 를 사용한다.
func NewAbstractiveWithGenerator(gen Generator, limiter *quota.Limiter, fallback *Extractive) *Abstractive {
	return &Abstractive{
		limiter:  limiter,
		fallback: fallback,
		newGenerator: func(context.Context) (Generator, error) {
			return gen, nil
		},
	}
}

func (a *Abstractive) generator() (Generator, error) {
	a.once.Do(func() {
		// 요청 컨텍스트가 취소되어도 클라이언트는 계속 재사용되므로 Background 로 만든다.
		a.gen, a.initErr = a.newGenerator(context.Background())
	})
	return a.gen, a.initErr
}

// Summarize 는 생성형 요약을 시도하고, 모델을 쓸 수 없으면 추출 요약 결과를 반환한다.
// 대체된 경우 Result.Method 는 extractive 이고 FallbackReason 에 사유가 담긴다.
// 컨텍스트 취소는 대체하지 않고 그대로 에러로 반환한다.
func (a *Abstractive) Summarize(ctx context.Context, text string, class LengthClass, lang Language) (*Result, error) {
	start := time.Now()

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}

	gen, err := a.generator()
	if err != nil {
		return a.degrade(text, class, err)
	}

	input := words
	if len(input) > maxInputWords {
		input = input[:maxInputWords]
	}

	prompt := strings.Join(input, " ")
	if len(input) > chunkThreshold {
		var parts []string
		for i := 0; i < len(input); i += chunkWords {
			end := min(i+chunkWords, len(input))
			part, err := a.generate(ctx, gen, strings.Join(input[i:end], " "), class, lang)
			if err != nil {
				return a.degradeOrFail(text, class, err)
			}
			parts = append(parts, part)
		}
		prompt = strings.Join(parts, " ")
	}

	summary, err := a.generate(ctx, gen, prompt, class, lang)
	if err != nil {
		return a.degradeOrFail(text, class, err)
	}

	summary = strings.TrimSpace(summary)
	if len(strings.Fields(summary)) < minOutputWords {
		return a.degrade(text, class, fmt.Errorf("model output too short: %q", summary))
	}

	return newResult(len(words), ensureTerminal(summary), MethodAbstractive, time.Since(start)), nil
}

func (a *Abstractive) generate(ctx context.Context, gen Generator, text string, class LengthClass, lang Language) (string, error) {
	if a.limiter != nil {
		ok, err := a.limiter.Reserve(ctx)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrQuotaExhausted
		}
	}

	minWords, maxWords := class.Bounds()
	system := fmt.Sprintf(SYSTEM_INSTRUCTION, lang.DisplayName(), minWords, maxWords)
	return gen.Generate(ctx, system, text)
}

func (a *Abstractive) degradeOrFail(text string, class LengthClass, cause error) (*Result, error) {
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		return nil, cause
	}
	return a.degrade(text, class, cause)
}

func (a *Abstractive) degrade(text string, class LengthClass, cause error) (*Result, error) {
	res, err := a.fallback.Summarize(text, class)
	if err != nil {
		return nil, err
	}
	res.FallbackReason = cause.Error()
	return res, nil
}
