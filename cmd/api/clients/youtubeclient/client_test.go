package youtubeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":                 "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=42":                           "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":                   "dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ":                       "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ#t": "dQw4w9WgXcQ",
	}
	for in, want := range cases {
		got, err := ExtractVideoID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ExtractVideoID("https://vimeo.com/12345")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestSelectTrack(t *testing.T) {
	tracks := []captionTrack{
		{LanguageCode: "en", BaseURL: "en"},
		{LanguageCode: "hi-IN", BaseURL: "hi-IN"},
		{LanguageCode: "hi", BaseURL: "hi"},
	}

	got, ok := selectTrack(tracks, "hi")
	require.True(t, ok)
	assert.Equal(t, "hi", got.BaseURL)

	got, _ = selectTrack(tracks[:2], "hi")
	assert.Equal(t, "hi-IN", got.BaseURL)

	got, _ = selectTrack(tracks[:1], "hi")
	assert.Equal(t, "en", got.BaseURL)

	_, ok = selectTrack(nil, "hi")
	assert.False(t, ok)
}

const watchPageTemplate = `<html><head><script>var ytInitialPlayerResponse = %s;var meta = {"x": 1};</script></head><body></body></html>`

func newYouTubeServer(t *testing.T, playerJSON string, captions string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123XYZ00", r.URL.Query().Get("v"))
		fmt.Fprintf(w, watchPageTemplate, playerJSON)
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(captions))
	})
	return httptest.NewServer(mux)
}

func TestTranscript(t *testing.T) {
	player := `{
		"playabilityStatus": {"status": "OK"},
		"videoDetails": {"videoId": "abc123XYZ00", "title": "Monsoon Explained"},
		"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
			{"baseUrl": "/api/timedtext?v=abc123XYZ00&lang=en", "languageCode": "en"},
			{"baseUrl": "/api/timedtext?v=abc123XYZ00&lang=hi", "languageCode": "hi", "kind": "asr"}
		]}}
	}`
	captions := `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
		`<text start="0" dur="2.1">Welcome to the   channel</text>` +
		`<text start="2.1" dur="3">it&amp;#39;s monsoon season</text>` +
		`<text start="5.1" dur="1"></text>` +
		`</transcript>`

	srv := newYouTubeServer(t, player, captions)
	defer srv.Close()

	client := NewWithBaseURL(nil, srv.URL)
	tr, err := client.Transcript(context.Background(), "https://youtu.be/abc123XYZ00", "hi")
	require.NoError(t, err)

	assert.Equal(t, "abc123XYZ00", tr.VideoID)
	assert.Equal(t, "Monsoon Explained", tr.Title)
	assert.Equal(t, "hi", tr.Language)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123XYZ00", tr.URL)
	assert.Equal(t, "Welcome to the channel it's monsoon season", tr.Text)
}

func TestTranscriptWithoutCaptions(t *testing.T) {
	player := `{"playabilityStatus": {"status": "OK"}, "videoDetails": {"title": "No Captions"}}`
	srv := newYouTubeServer(t, player, "")
	defer srv.Close()

	_, err := NewWithBaseURL(nil, srv.URL).Transcript(context.Background(), "https://www.youtube.com/watch?v=abc123XYZ00", "en")
	assert.ErrorIs(t, err, ErrNoCaptions)
}

func TestTranscriptUnavailableVideo(t *testing.T) {
	player := `{"playabilityStatus": {"status": "LOGIN_REQUIRED", "reason": "This video is private"}}`
	srv := newYouTubeServer(t, player, "")
	defer srv.Close()

	_, err := NewWithBaseURL(nil, srv.URL).Transcript(context.Background(), "https://www.youtube.com/watch?v=abc123XYZ00", "en")
	assert.ErrorIs(t, err, ErrVideoUnavailable)
}

func TestTranscriptInvalidURL(t *testing.T) {
	_, err := NewWithBaseURL(nil, "http://127.0.0.1:1").Transcript(context.Background(), "https://example.com/video", "en")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestParsePlayerResponseMissing(t *testing.T) {
	_, err := parsePlayerResponse("<html><body>consent page</body></html>")
	assert.ErrorIs(t, err, ErrVideoUnavailable)
}

func TestTranscriptUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewWithBaseURL(nil, srv.URL).Transcript(context.Background(), "https://youtu.be/abc123XYZ00", "en")
	assert.ErrorIs(t, err, ErrFetchFailed)
}
