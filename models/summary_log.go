package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SourceType string

const (
	SourceText    SourceType = "text"
	SourceURL     SourceType = "url"
	SourcePDF     SourceType = "pdf"
	SourceYouTube SourceType = "youtube"
)

// SummaryLog 는 요약 요청 한 건의 감사 기록이다. 원문과 요약문은 저장하지 않는다.
// Collection: summary_logs
type SummaryLog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID        string             `bson:"request_id" json:"request_id"`
	SourceType       SourceType         `bson:"source_type" json:"source_type"`
	Language         string             `bson:"language" json:"language"`
	SummaryLength    string             `bson:"summary_length" json:"summary_length"`
	Method           string             `bson:"method" json:"method"`
	OriginalWords    int                `bson:"original_words" json:"original_words"`
	SummaryWords     int                `bson:"summary_words" json:"summary_words"`
	CompressionRatio float64            `bson:"compression_ratio" json:"compression_ratio"`
	FallbackReason   *string            `bson:"fallback_reason,omitempty" json:"fallback_reason,omitempty"`
	DurationMs       int64              `bson:"duration_ms" json:"duration_ms"`
	ErrorMessage     *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
