package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"multilang-summarizer/cmd/api/clients/articleclient"
	"multilang-summarizer/cmd/api/clients/youtubeclient"
	"multilang-summarizer/cmd/api/services"
	"multilang-summarizer/config"
	"multilang-summarizer/db"
	"multilang-summarizer/exporter"
	"multilang-summarizer/quota"
	"multilang-summarizer/renderer"
	"multilang-summarizer/repositories"
	"multilang-summarizer/summarizer"
)

// app 은 serve/summarize 명령이 공유하는 서비스 묶음이다.
type app struct {
	summarize *services.SummarizeService
	export    *services.ExportService
	logs      *services.SummaryLogService
	pingMongo func(ctx context.Context) error
}

func newApp(ctx context.Context, cfg config.AppConfig) (*app, error) {
	extractive := summarizer.NewExtractive(summarizer.Options{
		PartialThreshold: cfg.Summarizer.PartialThreshold,
		FallbackChars:    cfg.Summarizer.FallbackChars,
		MinSentenceChars: cfg.Summarizer.MinSentenceChars,
	})
	abstractive := summarizer.NewAbstractive(cfg.LLM, quota.NewLimiter(cfg.Quota), extractive)

	timeout := time.Duration(cfg.Extraction.FetchTimeoutSec) * time.Second

	var render articleclient.RenderFunc
	if cfg.Extraction.RenderFallback {
		render = func(ctx context.Context, url string) (string, error) {
			return renderer.RenderHTML(ctx, url, renderer.Options{
				ChromePath: cfg.Extraction.ChromePath,
				UserAgent:  cfg.Extraction.UserAgent,
			})
		}
	}
	articles := articleclient.New(articleclient.Options{
		Timeout:      timeout,
		UserAgent:    userAgent(cfg.Extraction.UserAgent),
		MinTextChars: cfg.Extraction.MinTextChars,
		Render:       render,
	})
	videos := youtubeclient.New(timeout, userAgent(cfg.Extraction.UserAgent))

	a := &app{}
	var recorder services.Recorder = services.NopRecorder{}
	if cfg.Mongo.Enabled {
		if err := db.Init(ctx, cfg.Mongo); err != nil {
			return nil, fmt.Errorf("init mongo: %w", err)
		}
		repo := repositories.NewSummaryLogRepository(db.Database())
		recorder = services.NewMongoRecorder(repo)
		a.logs = services.NewSummaryLogService(repo)
		a.pingMongo = db.Ping
	}

	a.summarize = services.NewSummarizeService(
		summarizer.NewService(extractive, abstractive),
		articles,
		videos,
		recorder,
		cfg.Extraction.PDFMaxPages,
	)
	a.export = services.NewExportService(exporter.New(config.ExportConfig{
		UnicodeFontPath: resolvePath(cfg.Export.UnicodeFontPath),
	}))
	return a, nil
}

func userAgent(ua string) string {
	if ua == "" {
		return renderer.DefaultUserAgent
	}
	return ua
}

// resolvePath 는 상대 경로를 config.yaml 이 있는 디렉터리 기준으로 해석한다.
func resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if base := config.GetBasePath(); base != "" {
		return filepath.Join(base, p)
	}
	return p
}
