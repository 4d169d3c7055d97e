package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	LLM        LLMConfig        `yaml:"llm"`
	Quota      QuotaConfig      `yaml:"summary_quota"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Export     ExportConfig     `yaml:"export"`
	Mongo      MongoConfig      `yaml:"mongo"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxUploadMB 는 PDF 업로드 최대 크기(MB)이다.
	MaxUploadMB    int      `yaml:"max_upload_mb"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	// File 이 비어 있지 않으면 콘솔과 함께 회전 로그 파일에도 기록한다.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// SummarizerConfig 는 추출 요약기의 튜닝 상수이다.
// 0 이하(또는 0.0)인 값은 summarizer.DefaultOptions 의 값을 그대로 쓴다.
type SummarizerConfig struct {
	PartialThreshold float64 `yaml:"partial_threshold"`
	FallbackChars    int     `yaml:"fallback_chars"`
	MinSentenceChars int     `yaml:"min_sentence_chars"`
}

type LLMConfig struct {
	Provider  string `yaml:"provider"`
	ModelName string `yaml:"model_name"`
	// APIKey 는 yaml 에 두지 않고 GEMINI_API_KEY 환경변수로만 주입한다.
	APIKey string `yaml:"-"`
}

// QuotaConfig 는 요약용 LLM 호출에 대한 속도/일일 한도를 정의한다.
type QuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음.
	RequestsPerDay int `yaml:"requests_per_day"`
}

type ExtractionConfig struct {
	PDFMaxPages     int    `yaml:"pdf_max_pages"`
	MinTextChars    int    `yaml:"min_text_chars"`
	FetchTimeoutSec int    `yaml:"fetch_timeout_sec"`
	RenderFallback  bool   `yaml:"render_fallback"`
	ChromePath      string `yaml:"chrome_path"`
	UserAgent       string `yaml:"user_agent"`
}

type ExportConfig struct {
	// UnicodeFontPath 는 힌디어(데바나가리) 출력을 위한 TTF 폰트 경로이다.
	UnicodeFontPath string `yaml:"unicode_font_path"`
}

type MongoConfig struct {
	Enabled bool   `yaml:"enabled"`
	URI     string `yaml:"uri"`
	DBName  string `yaml:"db_name"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := Default()

	// load configuration file (없으면 기본값으로 동작한다)
	if base := GetBasePath(); base != "" {
		data, err := os.ReadFile(filepath.Join(base, CONFIG_FILE))
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	}

	applyEnv(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Default 는 config.yaml 이 없을 때 사용하는 기본 설정이다.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:           ":8000",
			MaxUploadMB:    20,
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  15,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		LLM: LLMConfig{
			Provider:  "google",
			ModelName: "gemini-2.5-flash",
		},
		Extraction: ExtractionConfig{
			PDFMaxPages:     15,
			MinTextChars:    50,
			FetchTimeoutSec: 20,
			ChromePath:      "/usr/bin/chromium-browser",
		},
		Mongo: MongoConfig{
			DBName: "summarizer",
		},
	}
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.Extraction.ChromePath = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Mongo.Enabled = b
		}
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
