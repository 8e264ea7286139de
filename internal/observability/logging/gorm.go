package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const dbModule Module = "db"

// GormLogger routes gorm output through slog so queries carry the request context.
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
	Driver        string
}

func NewGormLogger(driver string, slowThreshold time.Duration, level slog.Level) *GormLogger {
	return &GormLogger{
		SlowThreshold: slowThreshold,
		LogLevel:      gormLevel(level),
		Driver:        driver,
	}
}

func gormLevel(level slog.Level) gormlogger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return gormlogger.Info
	case level <= slog.LevelWarn:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level

	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *GormLogger) log(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.LogLevel < threshold {
		return
	}

	slog.Log(l.context(ctx), level, fmt.Sprintf(msg, args...),
		slog.String("event", "db.log"),
		slog.String("db.driver", l.Driver),
	)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	ctx = l.context(ctx)
	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []slog.Attr{
		slog.String("db.driver", l.Driver),
		slog.Duration("duration", elapsed),
		slog.String("sql", sql),
		slog.Int64("rows", rows),
	}

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs = append(attrs,
			slog.String("event", "db.query.fail"),
			slog.String("error", err.Error()),
		)
		slog.LogAttrs(ctx, slog.LevelError, "query error", attrs...)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		attrs = append(attrs,
			slog.String("event", "db.query.slow.detect"),
			slog.Duration("threshold", l.SlowThreshold),
		)
		slog.LogAttrs(ctx, slog.LevelWarn, "slow query", attrs...)
	case l.LogLevel >= gormlogger.Info:
		attrs = append(attrs, slog.String("event", "db.query"))
		slog.LogAttrs(ctx, slog.LevelDebug, "query executed", attrs...)
	}
}

func (l *GormLogger) context(ctx context.Context) context.Context {
	if ModuleFromContext(ctx) == "" {
		return WithModule(ctx, dbModule)
	}

	return ctx
}
