package dto

import "time"

type SummaryLogDTO struct {
	ID               string    `json:"id"`
	RequestID        string    `json:"request_id"`
	SourceType       string    `json:"source_type" example:"url"`
	Language         string    `json:"language"`
	SummaryLength    string    `json:"summary_length"`
	Method           string    `json:"method"`
	OriginalWords    int       `json:"original_words"`
	SummaryWords     int       `json:"summary_words"`
	CompressionRatio float64   `json:"compression_ratio"`
	FallbackReason   string    `json:"fallback_reason,omitempty"`
	DurationMs       int64     `json:"duration_ms"`
	Error            string    `json:"error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type SummaryLogListDTO struct {
	Items []SummaryLogDTO `json:"items"`
}
