package commands

import (
	"github.com/spf13/cobra"

	"multilang-summarizer/cmd/internal/logger"
	"multilang-summarizer/config"
)

// NewRootCmd 는 summarizer CLI 의 루트 명령이다.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "summarizer",
		Short: "Multilingual (Hindi/English) text, article, PDF and YouTube summarizer",
		Long: `summarizer produces short summaries of Hindi and English content.

Available commands:
  serve      - Run the HTTP API (with swagger UI at /swagger/index.html)
  summarize  - Summarize text, a web article, a PDF or a YouTube video and print JSON`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitApp()
			logger.Init(config.GetConfig().Logging)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Close()
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newSummarizeCmd())
	return root
}

// Execute 는 main.main 에서 한 번 호출된다.
func Execute() error {
	return NewRootCmd().Execute()
}
