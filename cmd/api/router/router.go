package router

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"multilang-summarizer/cmd/api/handlers"
	"multilang-summarizer/cmd/api/middleware"
	"multilang-summarizer/cmd/api/services"
	"multilang-summarizer/exporter"
)

type Deps struct {
	Summarize *services.SummarizeService
	Export    *services.ExportService
	// Logs 와 PingMongo 는 mongo 가 비활성화되면 nil 이다.
	Logs      *services.SummaryLogService
	PingMongo func(ctx context.Context) error

	AllowedOrigins []string
	MaxUploadBytes int64
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.CORS(d.AllowedOrigins))

	// multipart 파싱 시 메모리에 올리는 최대 크기
	if d.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = d.MaxUploadBytes
	}

	r.GET("/health", handlers.HealthHandler(d.PingMongo))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		summarize := api.Group("/summarize")
		summarize.POST("/text", handlers.SummarizeTextHandler(d.Summarize))
		summarize.POST("/url", handlers.SummarizeURLHandler(d.Summarize))
		summarize.POST("/pdf", handlers.SummarizePDFHandler(d.Summarize, d.MaxUploadBytes))
		summarize.POST("/youtube", handlers.SummarizeYouTubeHandler(d.Summarize))

		export := api.Group("/export")
		export.POST("/pdf", handlers.ExportHandler(d.Export, exporter.FormatPDF))
		export.POST("/word", handlers.ExportHandler(d.Export, exporter.FormatWord))
		export.POST("/markdown", handlers.ExportHandler(d.Export, exporter.FormatMarkdown))

		if d.Logs != nil {
			api.GET("/logs", handlers.ListSummaryLogsHandler(d.Logs))
		}
	}

	return r
}
