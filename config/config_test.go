package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
server:
  addr: ":9090"
  max_upload_mb: 5
summarizer:
  partial_threshold: 0.5
llm:
  provider: google
  model_name: gemini-test
summary_quota:
  requests_per_minute: 3
extraction:
  pdf_max_pages: 4
mongo:
  enabled: true
  uri: mongodb://localhost:27017
  db_name: testdb
`

func TestInitAppReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(testConfig), 0o644))
	nested := filepath.Join(dir, "cmd", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("MONGO_ENABLED", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	InitApp()
	cfg := GetConfig()

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Server.MaxUploadMB)
	assert.Equal(t, 0.5, cfg.Summarizer.PartialThreshold)
	assert.Equal(t, "gemini-test", cfg.LLM.ModelName)
	assert.Equal(t, 3, cfg.Quota.RequestsPerMinute)
	assert.Equal(t, 4, cfg.Extraction.PDFMaxPages)
	assert.True(t, cfg.Mongo.Enabled)
	assert.Equal(t, "testdb", cfg.Mongo.DBName)

	// 파일에 없는 값은 기본값을 유지한다.
	assert.Equal(t, 50, cfg.Extraction.MinTextChars)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.LLM.APIKey)
}

func TestInitAppEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(testConfig), 0o644))
	t.Chdir(dir)

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MONGO_ENABLED", "false")
	t.Setenv("MONGO_URI", "mongodb://other:27017")
	t.Setenv("CHROME_PATH", "/opt/chrome")

	InitApp()
	cfg := GetConfig()

	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Mongo.Enabled)
	assert.Equal(t, "mongodb://other:27017", cfg.Mongo.URI)
	assert.Equal(t, "/opt/chrome", cfg.Extraction.ChromePath)
}

func TestGetBasePathWalksUp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte("{}"), 0o644))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	got, err := filepath.EvalSymlinks(GetBasePath())
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, 15, cfg.Extraction.PDFMaxPages)
	assert.Equal(t, "google", cfg.LLM.Provider)
	assert.False(t, cfg.Mongo.Enabled)
}
