package logger

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 서비스 전역에서 쓰는 최소 로거 인터페이스다.
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

// Fields 는 구조화 로그용 top-level 필드다.
type Fields map[string]any

// Options 는 config.LoggingConfig 로부터 채워지는 로거 설정이다.
type Options struct {
	Level   string
	Service string
	// Output 이 nil 이면 stdout 콘솔 핸들러를 쓴다.
	Output io.Writer
}

const (
	defaultLevel   = "info"
	fieldService   = "service_name"
	jsonTimeFormat = "2006-01-02T15:04:05"
)

// Log 는 전역 로거 인스턴스다. Configure 가 호출되기 전에도 info 레벨로 동작한다.
var Log Logger = NewLogger(defaultLevel)

var serviceName string

// Configure 는 전역 로거와 service_name 필드를 opt 로 교체한다.
func Configure(opt Options) {
	Log = newLogger(normalizeLevel(opt.Level), opt.Output)
	serviceName = strings.TrimSpace(opt.Service)
}

// Init 은 레벨만 지정해 Configure 를 호출한다.
func Init(level string) {
	Configure(Options{Level: level})
}

// NewLogger 는 stdout 으로 JSON 을 쓰는 gookit/slog 로거를 만든다.
func NewLogger(level string) Logger {
	return newLogger(normalizeLevel(level), nil)
}

func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return defaultLevel
	}
	return level
}

// enabledLevels 는 max 이하(더 심각한 쪽)의 레벨 목록이다.
func enabledLevels(level string) slog.Levels {
	max := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= max {
			levels = append(levels, lv)
		}
	}
	return levels
}

func newLogger(level string, out io.Writer) *slog.Logger {
	levels := enabledLevels(level)
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
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
		f.TimeFormat = jsonTimeFormat
	})

	if out == nil {
		h := handler.NewConsoleHandler(levels)
		h.SetFormatter(formatter)
		return slog.NewWithHandlers(h)
	}
	h := handler.NewIOWriterHandler(out, levels)
	h.SetFormatter(formatter)
	return slog.NewWithHandlers(h)
}

// withServiceName 은 호출자가 service_name 을 주지 않았을 때 설정값(없으면
// SERVICE_NAME 환경변수)으로 채운다.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields[fieldService]; ok {
		return fields
	}
	sn := serviceName
	if sn == "" {
		sn = os.Getenv("SERVICE_NAME")
	}
	if sn != "" {
		fields[fieldService] = sn
	}
	return fields
}

func logWithFields(level slog.Level, msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		r := lg.WithFields(slog.M(fields))
		switch level {
		case slog.DebugLevel:
			r.Debug(msg)
		case slog.WarnLevel:
			r.Warn(msg)
		case slog.ErrorLevel:
			r.Error(msg)
		default:
			r.Info(msg)
		}
		return
	}

	// 교체된 구현에는 필드 없이 메시지만 남긴다.
	switch level {
	case slog.DebugLevel:
		Log.Debug(msg)
	case slog.WarnLevel:
		Log.Warn(msg)
	case slog.ErrorLevel:
		Log.Error(msg)
	default:
		Log.Info(msg)
	}
}

// InfoWithFields 는 request_id, item_type 같은 필드를 포함한 JSON 로그를 남긴다.
func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }
