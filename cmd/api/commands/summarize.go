package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"multilang-summarizer/cmd/api/dto"
	"multilang-summarizer/cmd/api/services"
	"multilang-summarizer/cmd/api/trace"
	"multilang-summarizer/config"
)

type summarizeFlags struct {
	file     string
	url      string
	pdf      string
	youtube  string
	length   string
	language string
	method   string
}

func newSummarizeCmd() *cobra.Command {
	var f summarizeFlags

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize text (stdin by default), a file, an article URL, a PDF or a YouTube video",
		Example: `  echo "भारत एक विशाल देश है। ..." | summarizer summarize --length short
  summarizer summarize --url https://example.com/news --language english
  summarizer summarize --pdf report.pdf --method abstractive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = trace.WithRequestAndSpan(ctx, trace.GenerateID(), 0)

			a, err := newApp(ctx, config.GetConfig())
			if err != nil {
				return err
			}

			resp, err := f.run(ctx, a.summarize, cmd.InOrStdin())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&f.file, "file", "", "read text from a file")
	cmd.Flags().StringVar(&f.url, "url", "", "summarize a web article")
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "summarize a PDF file")
	cmd.Flags().StringVar(&f.youtube, "youtube", "", "summarize a YouTube video transcript")
	cmd.Flags().StringVar(&f.length, "length", "auto", "summary length: short | medium | long | auto")
	cmd.Flags().StringVar(&f.language, "language", "hindi", "summary language: hindi | english")
	cmd.Flags().StringVar(&f.method, "method", "extractive", "extractive | abstractive")
	return cmd
}

func (f summarizeFlags) validate() error {
	n := 0
	for _, v := range []string{f.file, f.url, f.pdf, f.youtube} {
		if v != "" {
			n++
		}
	}
	if n > 1 {
		return errors.New("only one of --file, --url, --pdf, --youtube may be given")
	}
	return nil
}

func (f summarizeFlags) run(ctx context.Context, svc *services.SummarizeService, stdin io.Reader) (dto.SummaryResponseDTO, error) {
	opts := services.SummarizeOptions{
		Language:      f.language,
		SummaryLength: f.length,
		Method:        f.method,
	}

	switch {
	case f.url != "":
		return svc.SummarizeURL(ctx, f.url, opts)
	case f.youtube != "":
		return svc.SummarizeYouTube(ctx, f.youtube, opts)
	case f.pdf != "":
		data, err := os.ReadFile(f.pdf)
		if err != nil {
			return dto.SummaryResponseDTO{}, err
		}
		return svc.SummarizePDF(ctx, filepath.Base(f.pdf), data, opts)
	case f.file != "":
		data, err := os.ReadFile(f.file)
		if err != nil {
			return dto.SummaryResponseDTO{}, err
		}
		return svc.SummarizeText(ctx, string(data), opts)
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return dto.SummaryResponseDTO{}, fmt.Errorf("read stdin: %w", err)
		}
		return svc.SummarizeText(ctx, string(data), opts)
	}
}
