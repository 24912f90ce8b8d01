package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger routes GORM output through slog. Statements issued with a
// request context are logged by that request's logger so they carry its request_id.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		base:  baseLogger,
		level: logger.Warn,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database != nil {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "[DB] "+fmt.Sprintf(msg, args...))
}

// Trace logs failed statements at error, slow ones at warn and, in debug
// mode, every statement at info. Missing rows are not failures: repositories
// turn them into not-found results.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logStatement(ctx, slog.LevelError, "[DB] Query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.logStatement(ctx, slog.LevelWarn, "[DB] Slow query", sqlAndRowsFn, elapsed, slog.Duration("threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.logStatement(ctx, slog.LevelInfo, "[DB] Query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) logStatement(
	ctx context.Context,
	level slog.Level,
	msg string,
	sqlAndRowsFn func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	statement, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
