package dto

import "multilang-summarizer/summarizer"

type SummarizeTextRequestDTO struct {
	Text          string `json:"text" binding:"required" example:"भारत एक विशाल देश है। यहाँ अनेक भाषाएँ बोली जाती हैं।"`
	Language      string `json:"language" example:"hindi" enums:"hindi,english"`
	SummaryLength string `json:"summary_length" example:"auto" enums:"short,medium,long,auto"`
	Method        string `json:"method" example:"extractive" enums:"extractive,abstractive"`
}

type SummarizeURLRequestDTO struct {
	URL           string `json:"url" binding:"required" example:"https://example.com/news/monsoon"`
	Language      string `json:"language" example:"english" enums:"hindi,english"`
	SummaryLength string `json:"summary_length" example:"medium" enums:"short,medium,long,auto"`
	Method        string `json:"method" example:"extractive" enums:"extractive,abstractive"`
}

type SummarizeYouTubeRequestDTO struct {
	URL           string `json:"url" binding:"required" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	Language      string `json:"language" example:"hindi" enums:"hindi,english"`
	SummaryLength string `json:"summary_length" example:"short" enums:"short,medium,long,auto"`
	Method        string `json:"method" example:"extractive" enums:"extractive,abstractive"`
}

// SummaryResponseDTO는 모든 요약 엔드포인트의 공통 응답이다.
// 입력 소스에 따라 title/source_url/filename/video_id 등이 채워진다.
type SummaryResponseDTO struct {
	Summary          string  `json:"summary"`
	OriginalLength   int     `json:"original_length" example:"240"`
	SummaryLength    int     `json:"summary_length" example:"30"`
	CompressionRatio float64 `json:"compression_ratio" example:"0.13"`
	ProcessingTime   float64 `json:"processing_time" example:"0.01"`
	Method           string  `json:"method" example:"extractive"`
	FallbackReason   string  `json:"fallback_reason,omitempty"`
	Language         string  `json:"language" example:"hindi"`

	Statistics summarizer.Statistics `json:"statistics"`
	Quality    summarizer.Quality    `json:"quality"`

	Title     string `json:"title,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
	Extractor string `json:"extractor,omitempty"`

	Filename  string `json:"filename,omitempty"`
	FileType  string `json:"file_type,omitempty"`
	PageCount int    `json:"page_count,omitempty"`
	PagesRead int    `json:"pages_read,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`

	VideoID  string `json:"video_id,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}
