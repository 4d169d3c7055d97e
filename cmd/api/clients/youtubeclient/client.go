package youtubeclient

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"multilang-summarizer/cmd/api/httpclient"
)

const (
	DefaultBaseURL = "https://www.youtube.com"
	DefaultTitle   = "YouTube Video"

	playerResponseMarker = "ytInitialPlayerResponse"
	maxWatchPageSize     = 8 * 1024 * 1024
)

var (
	ErrInvalidURL       = errors.New("invalid youtube url")
	ErrNoCaptions       = errors.New("this video doesn't have captions available")
	ErrVideoUnavailable = errors.New("video is unavailable or private")
	// ErrFetchFailed 는 YouTube 서버 요청 자체가 실패한 경우이다.
	ErrFetchFailed = errors.New("youtube request failed")
)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#/]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#/]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractVideoID 는 watch, youtu.be, embed, /v/ 형식의 URL 에서 영상 ID 를 꺼낸다.
func ExtractVideoID(rawURL string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
}

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
}

type Transcript struct {
	VideoID  string
	Title    string
	URL      string
	Language string
	Text     string
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails struct {
		VideoID string `json:"videoId"`
		Title   string `json:"title"`
	} `json:"videoDetails"`
	Captions struct {
		Renderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type timedText struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

type Client struct {
	base *httpclient.BaseClient
}

func New(timeout time.Duration, userAgent string) *Client {
	httpClient := httpclient.New(httpclient.Config{Timeout: timeout, UserAgent: userAgent})
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, DefaultBaseURL)}
}

// NewWithBaseURL 은 테스트 서버 등 다른 호스트를 바라보는 클라이언트를 만든다.
func NewWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, baseURL)}
}

// Transcript 는 영상의 자막을 평문으로 가져온다.
// 자막 트랙은 언어 코드 일치 → 접두 일치(hi → hi-IN) → 첫 번째 트랙 순서로 고른다.
func (c *Client) Transcript(ctx context.Context, videoURL, lang string) (*Transcript, error) {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	player, err := c.playerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}

	switch player.PlayabilityStatus.Status {
	case "", "OK":
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrVideoUnavailable, player.PlayabilityStatus.Status, player.PlayabilityStatus.Reason)
	}

	track, ok := selectTrack(player.Captions.Renderer.CaptionTracks, lang)
	if !ok {
		return nil, ErrNoCaptions
	}

	text, err := c.fetchTrack(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoCaptions
	}

	title := strings.TrimSpace(player.VideoDetails.Title)
	if title == "" {
		title = DefaultTitle
	}
	return &Transcript{
		VideoID:  videoID,
		Title:    title,
		URL:      WatchURL(videoID),
		Language: track.LanguageCode,
		Text:     text,
	}, nil
}

func (c *Client) playerResponse(ctx context.Context, videoID string) (*playerResponse, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/watch", url.Values{"v": {videoID}}, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.base.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrVideoUnavailable, videoID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: watch page status=%d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWatchPageSize))
	if err != nil {
		return nil, fmt.Errorf("youtube watch page read failed: %w", err)
	}

	return parsePlayerResponse(string(body))
}

// parsePlayerResponse 는 watch 페이지에 인라인된 ytInitialPlayerResponse JSON 을 읽는다.
func parsePlayerResponse(page string) (*playerResponse, error) {
	idx := strings.Index(page, playerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: player response not found", ErrVideoUnavailable)
	}
	rest := page[idx+len(playerResponseMarker):]
	start := strings.Index(rest, "{")
	if start < 0 {
		return nil, fmt.Errorf("%w: player response not found", ErrVideoUnavailable)
	}

	var out playerResponse
	// Decoder 는 첫 JSON 값만 읽으므로 뒤따르는 스크립트는 무시된다.
	if err := json.NewDecoder(strings.NewReader(rest[start:])).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &out, nil
}

func selectTrack(tracks []captionTrack, lang string) (captionTrack, bool) {
	if len(tracks) == 0 {
		return captionTrack{}, false
	}
	lang = strings.ToLower(lang)
	base, _, _ := strings.Cut(lang, "-")

	for _, t := range tracks {
		if strings.ToLower(t.LanguageCode) == lang {
			return t, true
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(strings.ToLower(t.LanguageCode), base) {
			return t, true
		}
	}
	return tracks[0], true
}

func (c *Client) fetchTrack(ctx context.Context, trackURL string) (string, error) {
	u, err := url.Parse(trackURL)
	if err != nil {
		return "", fmt.Errorf("invalid caption track url: %w", err)
	}
	// baseUrl 이 상대 경로이면 watch 페이지와 같은 호스트를 사용한다.
	if !u.IsAbs() {
		base, err := url.Parse(c.base.BaseURL)
		if err != nil {
			return "", err
		}
		u = base.ResolveReference(u)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.base.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: caption track status=%d", ErrNoCaptions, resp.StatusCode)
	}

	var tt timedText
	if err := xml.NewDecoder(resp.Body).Decode(&tt); err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrNoCaptions
		}
		return "", fmt.Errorf("decode caption track: %w", err)
	}

	parts := make([]string, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		line := strings.Join(strings.Fields(html.UnescapeString(t.Value)), " ")
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " "), nil
}
