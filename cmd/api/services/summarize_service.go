package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"multilang-summarizer/cmd/api/clients/youtubeclient"
	"multilang-summarizer/cmd/api/dto"
	"multilang-summarizer/cmd/api/trace"
	"multilang-summarizer/cmd/internal/logger"
	"multilang-summarizer/models"
	"multilang-summarizer/parser"
	"multilang-summarizer/summarizer"
)

var ErrUnsupportedFile = errors.New("only PDF files are allowed")

// ArticleFetcher 는 URL 에서 기사 본문을 가져온다.
type ArticleFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*parser.ParsedArticle, error)
}

// TranscriptFetcher 는 YouTube 영상 자막을 가져온다.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, videoURL, lang string) (*youtubeclient.Transcript, error)
}

// SummarizeOptions 는 API 입력 그대로의 문자열 옵션이다. 검증은 서비스에서 한다.
type SummarizeOptions struct {
	Language      string
	SummaryLength string
	Method        string
}

type parsedOptions struct {
	language summarizer.Language
	length   summarizer.LengthClass
	method   string
}

func (o SummarizeOptions) parse() (parsedOptions, error) {
	lang, err := summarizer.ParseLanguage(o.Language)
	if err != nil {
		return parsedOptions{}, err
	}
	length, err := summarizer.ParseLengthClass(o.SummaryLength)
	if err != nil {
		return parsedOptions{}, err
	}
	method, err := summarizer.ParseMethod(o.Method)
	if err != nil {
		return parsedOptions{}, err
	}
	return parsedOptions{language: lang, length: length, method: method}, nil
}

// logValues 는 감사 기록용 옵션 값이다. 해석되는 값은 기본값이 적용된 형태로,
// 해석되지 않는 값은 입력 그대로 남긴다.
func (o SummarizeOptions) logValues() (language, length, method string) {
	language, length, method = o.Language, o.SummaryLength, o.Method
	if l, err := summarizer.ParseLanguage(o.Language); err == nil {
		language = string(l)
	}
	if c, err := summarizer.ParseLengthClass(o.SummaryLength); err == nil {
		length = string(c)
	}
	if m, err := summarizer.ParseMethod(o.Method); err == nil {
		method = m
	}
	return language, length, method
}

type SummarizeService struct {
	summarizer  *summarizer.Service
	articles    ArticleFetcher
	videos      TranscriptFetcher
	recorder    Recorder
	pdfMaxPages int
}

func NewSummarizeService(
	sum *summarizer.Service,
	articles ArticleFetcher,
	videos TranscriptFetcher,
	recorder Recorder,
	pdfMaxPages int,
) *SummarizeService {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &SummarizeService{
		summarizer:  sum,
		articles:    articles,
		videos:      videos,
		recorder:    recorder,
		pdfMaxPages: pdfMaxPages,
	}
}

func (s *SummarizeService) SummarizeText(ctx context.Context, text string, opts SummarizeOptions) (dto.SummaryResponseDTO, error) {
	parsed, err := opts.parse()
	if err != nil {
		s.recordFailure(ctx, models.SourceText, opts, err)
		return dto.SummaryResponseDTO{}, err
	}
	return s.summarize(ctx, models.SourceText, text, opts, parsed)
}

func (s *SummarizeService) SummarizeURL(ctx context.Context, rawURL string, opts SummarizeOptions) (dto.SummaryResponseDTO, error) {
	parsed, err := opts.parse()
	if err != nil {
		s.recordFailure(ctx, models.SourceURL, opts, err)
		return dto.SummaryResponseDTO{}, err
	}

	article, err := s.articles.Fetch(ctx, rawURL)
	if err != nil {
		s.recordFailure(ctx, models.SourceURL, opts, err)
		return dto.SummaryResponseDTO{}, err
	}

	resp, err := s.summarize(ctx, models.SourceURL, article.Text, opts, parsed)
	if err != nil {
		return dto.SummaryResponseDTO{}, err
	}
	resp.Title = article.Title
	resp.SourceURL = rawURL
	resp.Extractor = article.Extractor
	return resp, nil
}

func (s *SummarizeService) SummarizePDF(ctx context.Context, filename string, data []byte, opts SummarizeOptions) (dto.SummaryResponseDTO, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		s.recordFailure(ctx, models.SourcePDF, opts, ErrUnsupportedFile)
		return dto.SummaryResponseDTO{}, ErrUnsupportedFile
	}
	parsed, err := opts.parse()
	if err != nil {
		s.recordFailure(ctx, models.SourcePDF, opts, err)
		return dto.SummaryResponseDTO{}, err
	}

	pdfText, err := parser.ExtractPDFText(data, s.pdfMaxPages)
	if err != nil {
		s.recordFailure(ctx, models.SourcePDF, opts, err)
		return dto.SummaryResponseDTO{}, err
	}

	resp, err := s.summarize(ctx, models.SourcePDF, pdfText.Text, opts, parsed)
	if err != nil {
		return dto.SummaryResponseDTO{}, err
	}
	resp.Filename = filename
	resp.FileType = "PDF"
	resp.PageCount = pdfText.PageCount
	resp.PagesRead = pdfText.PagesRead
	resp.Truncated = pdfText.Truncated
	return resp, nil
}

func (s *SummarizeService) SummarizeYouTube(ctx context.Context, videoURL string, opts SummarizeOptions) (dto.SummaryResponseDTO, error) {
	parsed, err := opts.parse()
	if err != nil {
		s.recordFailure(ctx, models.SourceYouTube, opts, err)
		return dto.SummaryResponseDTO{}, err
	}

	transcript, err := s.videos.Transcript(ctx, videoURL, parsed.language.Code())
	if err != nil {
		s.recordFailure(ctx, models.SourceYouTube, opts, err)
		return dto.SummaryResponseDTO{}, err
	}

	resp, err := s.summarize(ctx, models.SourceYouTube, transcript.Text, opts, parsed)
	if err != nil {
		return dto.SummaryResponseDTO{}, err
	}
	resp.Title = transcript.Title
	resp.VideoID = transcript.VideoID
	resp.VideoURL = transcript.URL
	return resp, nil
}

// summarize 는 요청마다 성공이든 실패든 감사 기록을 정확히 한 건 남긴다.
func (s *SummarizeService) summarize(ctx context.Context, source models.SourceType, text string, opts SummarizeOptions, parsed parsedOptions) (dto.SummaryResponseDTO, error) {
	start := time.Now()
	result, err := s.summarizer.Summarize(ctx, summarizer.Request{
		Text:     text,
		Length:   parsed.length,
		Language: parsed.language,
		Method:   parsed.method,
	})
	if err != nil {
		s.recordFailure(ctx, source, opts, err)
		return dto.SummaryResponseDTO{}, err
	}
	// 소스 추출 시간은 제외하고 요약 자체의 처리 시간만 보고한다.
	result.Elapsed = time.Since(start)

	stats := summarizer.Analyze(text)
	resp := dto.SummaryResponseDTO{
		Summary:          result.Summary,
		OriginalLength:   result.OriginalLength,
		SummaryLength:    result.SummaryLength,
		CompressionRatio: result.CompressionRatio,
		ProcessingTime:   result.ProcessingTime(),
		Method:           result.Method,
		FallbackReason:   result.FallbackReason,
		Language:         string(parsed.language),
		Statistics:       stats,
		Quality:          summarizer.Assess(stats),
	}

	if result.FallbackReason != "" {
		logger.InfoWithFields("abstractive summary fell back to extractive", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"source":     string(source),
			"reason":     result.FallbackReason,
		})
	}

	s.record(ctx, models.SummaryLog{
		SourceType:       source,
		Language:         string(parsed.language),
		SummaryLength:    string(parsed.length),
		Method:           result.Method,
		OriginalWords:    result.OriginalLength,
		SummaryWords:     result.SummaryLength,
		CompressionRatio: result.CompressionRatio,
		FallbackReason:   optionalString(result.FallbackReason),
		DurationMs:       result.Elapsed.Milliseconds(),
	})
	return resp, nil
}

func (s *SummarizeService) recordFailure(ctx context.Context, source models.SourceType, opts SummarizeOptions, cause error) {
	language, length, method := opts.logValues()
	s.record(ctx, models.SummaryLog{
		SourceType:    source,
		Language:      language,
		SummaryLength: length,
		Method:        method,
		ErrorMessage:  optionalString(cause.Error()),
	})
}

// record 는 감사 기록 실패를 요청 실패로 취급하지 않는다.
func (s *SummarizeService) record(ctx context.Context, log models.SummaryLog) {
	log.RequestID = trace.RequestIDFromContext(ctx)
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := s.recorder.Record(recCtx, log); err != nil {
		logger.ErrorWithFields("failed to record summary log", logger.Fields{
			"request_id": log.RequestID,
			"source":     string(log.SourceType),
			"error":      fmt.Sprint(err),
		})
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
