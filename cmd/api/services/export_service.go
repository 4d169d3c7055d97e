package services

import (
	"errors"
	"strings"

	"multilang-summarizer/exporter"
)

var ErrEmptySummary = errors.New("summary is required")

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportService struct {
	exporter *exporter.Exporter
}

func NewExportService(e *exporter.Exporter) *ExportService {
	return &ExportService{exporter: e}
}

func (s *ExportService) Export(format exporter.Format, summary, title, language string) (ExportResult, error) {
	if strings.TrimSpace(summary) == "" {
		return ExportResult{}, ErrEmptySummary
	}
	if strings.TrimSpace(title) == "" {
		title = exporter.DefaultTitle
	}

	data, err := s.exporter.Export(format, exporter.Document{
		Title:    title,
		Summary:  summary,
		Language: language,
	})
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Filename:    exporter.Filename(title, format),
		ContentType: exporter.ContentType(format),
		Data:        data,
	}, nil
}
