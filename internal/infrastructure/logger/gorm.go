package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// Queries slower than this log at warn level
const slowQueryThreshold = 200 * time.Millisecond

// GormLogger bridges GORM's logger interface onto zap. Record-not-found
// errors are not logged; they surface as domain not-found errors.
type GormLogger struct {
	zl    *zap.Logger
	level gormlogger.LogLevel
}

// NewGormLogger creates a GORM logger backed by zap
func NewGormLogger(zl *zap.Logger, level gormlogger.LogLevel) *GormLogger {
	return &GormLogger{zl: zl.Named("gorm"), level: level}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.zl.Sugar().Infof(msg, args...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.zl.Sugar().Warnf(msg, args...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.zl.Sugar().Errorf(msg, args...)
	}
}

// Trace logs each SQL statement with its latency and row count,
// tagged with the request ID when the context carries one
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		l.zl.Error("sql failed", append(fields, zap.Error(err))...)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		l.zl.Warn("slow sql", fields...)
	case l.level >= gormlogger.Info:
		l.zl.Debug("sql", fields...)
	}
}

// MapGormLogLevel maps the application log level onto GORM's levels
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
