package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"multilang-summarizer/cmd/api/clients/articleclient"
	"multilang-summarizer/cmd/api/clients/youtubeclient"
	"multilang-summarizer/cmd/api/dto"
	"multilang-summarizer/cmd/api/services"
	"multilang-summarizer/cmd/api/trace"
	"multilang-summarizer/cmd/internal/logger"
	"multilang-summarizer/exporter"
	"multilang-summarizer/parser"
	"multilang-summarizer/summarizer"
)

var (
	badRequestErrors = []error{
		summarizer.ErrInvalidInput,
		services.ErrUnsupportedFile,
		services.ErrEmptySummary,
		articleclient.ErrInvalidURL,
		youtubeclient.ErrInvalidURL,
		parser.ErrInvalidPDF,
		exporter.ErrUnsupportedFormat,
	}
	noContentErrors = []error{
		parser.ErrNoContent,
		parser.ErrNoReadableText,
		youtubeclient.ErrNoCaptions,
		youtubeclient.ErrVideoUnavailable,
	}
	upstreamErrors = []error{
		articleclient.ErrFetchFailed,
		youtubeclient.ErrFetchFailed,
	}
)

// statusFor 는 서비스 에러를 HTTP 상태 코드로 변환한다.
func statusFor(err error) int {
	switch {
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case isAny(err, noContentErrors):
		return http.StatusUnprocessableEntity
	case isAny(err, upstreamErrors):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", logger.Fields{
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponseDTO{Error: err.Error()})
}
