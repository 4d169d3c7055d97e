package services

import (
	"context"

	"multilang-summarizer/models"
	"multilang-summarizer/repositories"
)

// Recorder 는 요약 요청 감사 기록을 저장한다.
type Recorder interface {
	Record(ctx context.Context, log models.SummaryLog) error
}

// NopRecorder 는 mongo 가 비활성화된 경우에 사용한다.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, models.SummaryLog) error { return nil }

type MongoRecorder struct {
	repo *repositories.SummaryLogRepository
}

func NewMongoRecorder(repo *repositories.SummaryLogRepository) *MongoRecorder {
	return &MongoRecorder{repo: repo}
}

func (r *MongoRecorder) Record(ctx context.Context, log models.SummaryLog) error {
	_, err := r.repo.Insert(ctx, log)
	return err
}
