package logger

import "strings"

type Fields map[string]interface{}

type Logger interface {
	Info(message string, properties map[string]interface{})
	Error(err error, properties map[string]interface{})
	Fatal(err error, properties map[string]interface{})
	Debug(message string, properties map[string]interface{})
	SetLevel(level Level)
}

type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	case LevelDebug:
		return "DEBUG"
	default:
		return ""
	}
}

// ParseLevel maps a LOG_LEVEL value to a Level, falling back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	case "off", "disabled", "none":
		return LevelOff
	default:
		return LevelInfo
	}
}
