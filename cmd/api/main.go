package main

import (
	"os"

	"multilang-summarizer/cmd/api/commands"
	_ "multilang-summarizer/docs" // swag 로 생성된 API 문서
)

// @title           MultiLanguage AI Text Summarizer API
// @version         1.0
// @description     Summarize Hindi and English text, web articles, PDFs and YouTube videos, and export the result.
// @BasePath        /api/v1
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
