package articleclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"multilang-summarizer/cmd/api/httpclient"
	"multilang-summarizer/parser"
)

const maxPageSize = 10 * 1024 * 1024

var (
	ErrInvalidURL = errors.New("invalid article url")
	// ErrFetchFailed 는 원격 페이지를 가져오지 못한 경우이다(네트워크 오류, 비 2xx 응답).
	ErrFetchFailed = errors.New("article fetch failed")
)

type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("article request failed: status=%d url=%s", e.StatusCode, e.URL)
}

// RenderFunc 는 자바스크립트 렌더링이 필요한 페이지의 최종 HTML 을 반환한다.
type RenderFunc func(ctx context.Context, url string) (string, error)

type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MinTextChars int
	// Render 가 nil 이 아니면 정적 HTML 에서 본문을 찾지 못했을 때 렌더링 후 다시 추출한다.
	Render RenderFunc
}

type Client struct {
	http     *http.Client
	minChars int
	render   RenderFunc
}

func New(opts Options) *Client {
	return NewWithHTTPClient(httpclient.New(httpclient.Config{
		Timeout:   opts.Timeout,
		UserAgent: opts.UserAgent,
	}), opts)
}

func NewWithHTTPClient(httpClient *http.Client, opts Options) *Client {
	minChars := opts.MinTextChars
	if minChars <= 0 {
		minChars = 50
	}
	return &Client{http: httpClient, minChars: minChars, render: opts.Render}
}

// Fetch 는 URL 의 기사 본문과 제목을 추출한다.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*parser.ParsedArticle, error) {
	pageURL, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	htmlStr, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	article, err := parser.ParseArticle(htmlStr, pageURL, c.minChars)
	if err == nil || !errors.Is(err, parser.ErrNoContent) || c.render == nil {
		return article, err
	}

	rendered, renderErr := c.render(ctx, pageURL)
	if renderErr != nil {
		return nil, fmt.Errorf("%w (render fallback: %v)", err, renderErr)
	}
	return parser.ParseArticle(rendered, pageURL, c.minChars)
}

func (c *Client) get(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, &HTTPError{StatusCode: resp.StatusCode, URL: pageURL})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}
	return string(body), nil
}

// ValidateURL 은 http(s) 절대 URL 만 허용한다.
func ValidateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return u.String(), nil
}
