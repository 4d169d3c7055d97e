package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
	"gopkg.in/natefinch/lumberjack.v2"

	"multilang-summarizer/config"
)

// Logger 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
// 필요 시 다른 구현으로 교체할 수 있도록 인터페이스로 노출한다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Log 는 전역 로거 인스턴스다.
// Init 이 호출되지 않더라도 기본 info 레벨로 동작하도록 초기화한다.
var Log Logger = NewLogger("info")

// rotating 은 파일 싱크가 켜진 경우 Close 를 위해 보관한다.
var rotating *lumberjack.Logger

// Init 은 config.yaml 의 logging 섹션으로 전역 로거를 초기화한다.
// file 이 지정되면 콘솔 출력과 함께 lumberjack 회전 파일에도 기록한다.
func Init(cfg config.LoggingConfig) {
	level := strings.ToLower(cfg.Level)
	if level == "" {
		level = "info"
	}
	if cfg.File == "" {
		Log = NewLogger(level)
		return
	}

	rotating = &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	levels := levelsUpTo(level)
	fileHandler := handler.NewIOWriterHandler(rotating, levels)
	fileHandler.SetFormatter(newFormatter())

	consoleHandler := handler.NewConsoleHandler(levels)
	consoleHandler.SetFormatter(newFormatter())

	Log = slog.NewWithHandlers(consoleHandler, fileHandler)
}

// Close 는 파일 싱크를 닫는다. 파일 싱크가 없으면 아무것도 하지 않는다.
func Close() error {
	if rotating == nil {
		return nil
	}
	return rotating.Close()
}

// NewLogger 는 주어진 레벨로 gookit/slog 기반 콘솔 로거를 생성한다.
func NewLogger(level string) Logger {
	h := handler.NewConsoleHandler(levelsUpTo(level))
	h.SetFormatter(newFormatter())
	return slog.NewWithHandlers(h)
}

func levelsUpTo(level string) slog.Levels {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}
	return levels
}

// newFormatter 는 기본 필드를 datetime/level/message 로만 제한하고
// 나머지 정보는 Fields(top-level 키)로만 출력하는 JSON 포맷터를 만든다.
func newFormatter() *slog.JSONFormatter {
	return slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
}

// withServiceName 은 service_name 필드를 SERVICE_NAME 환경변수 기준으로 보강한다.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; !ok {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			fields["service_name"] = sn
		}
	}
	return fields
}

// InfoWithFields 는 request_id, span_id 등 구조화 필드를 포함한 JSON 로그를 출력한다.
func InfoWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Info(msg)
		return
	}
	Log.Info(msg)
}

func DebugWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Debug(msg)
		return
	}
	Log.Debug(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Error(msg)
		return
	}
	Log.Error(msg)
}
