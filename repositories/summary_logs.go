package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"multilang-summarizer/db"
	"multilang-summarizer/models"
)

type SummaryLogRepository struct {
	col *mongo.Collection
}

func NewSummaryLogRepository(database *mongo.Database) *SummaryLogRepository {
	return &SummaryLogRepository{col: database.Collection(db.SummaryLogsCollection)}
}

func (r *SummaryLogRepository) Insert(ctx context.Context, log models.SummaryLog) (*mongo.InsertOneResult, error) {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// Recent 는 최근 요약 기록을 최신순으로 조회한다. sourceType 이 비어 있으면 전체를 조회한다.
func (r *SummaryLogRepository) Recent(ctx context.Context, sourceType models.SourceType, limit int64) ([]models.SummaryLog, error) {
	filter := bson.M{}
	if sourceType != "" {
		filter["source_type"] = sourceType
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.SummaryLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
