package services

import (
	"context"

	"multilang-summarizer/cmd/api/dto"
	"multilang-summarizer/models"
	"multilang-summarizer/repositories"
)

type SummaryLogService struct {
	repo *repositories.SummaryLogRepository
}

func NewSummaryLogService(repo *repositories.SummaryLogRepository) *SummaryLogService {
	return &SummaryLogService{repo: repo}
}

// Recent 는 최근 기록을 limit 개까지 반환한다. limit 은 1~100 으로 보정한다.
func (s *SummaryLogService) Recent(ctx context.Context, source string, limit int) (dto.SummaryLogListDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	logs, err := s.repo.Recent(ctx, models.SourceType(source), int64(limit))
	if err != nil {
		return dto.SummaryLogListDTO{}, err
	}

	items := make([]dto.SummaryLogDTO, 0, len(logs))
	for _, l := range logs {
		item := dto.SummaryLogDTO{
			ID:               l.ID.Hex(),
			RequestID:        l.RequestID,
			SourceType:       string(l.SourceType),
			Language:         l.Language,
			SummaryLength:    l.SummaryLength,
			Method:           l.Method,
			OriginalWords:    l.OriginalWords,
			SummaryWords:     l.SummaryWords,
			CompressionRatio: l.CompressionRatio,
			DurationMs:       l.DurationMs,
			CreatedAt:        l.CreatedAt,
		}
		if l.FallbackReason != nil {
			item.FallbackReason = *l.FallbackReason
		}
		if l.ErrorMessage != nil {
			item.Error = *l.ErrorMessage
		}
		items = append(items, item)
	}
	return dto.SummaryLogListDTO{Items: items}, nil
}
