package logger

import (
	"log/slog"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// Gorm adapts the process logger for gorm's SQL tracing.
func Gorm(l *slog.Logger, level string) gormlogger.Interface {
	if l == nil {
		l = LoggerWrapper()
	}
	return gormlogger.New(
		slog.NewLogLogger(l.Handler(), slog.LevelInfo),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel(level),
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}

func gormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
