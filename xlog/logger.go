package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ ILogger = &zLogger{}

// ILogger bounded 包内部使用的日志接口
type ILogger interface {
	Debugw(string, ...any)
	Debugx(string, ...zapcore.Field)

	Infow(string, ...any)
	Infox(string, ...zapcore.Field)

	Warnw(string, ...any)
	Warnx(string, ...zapcore.Field)

	Errorw(string, ...any)
	Errorx(string, ...zapcore.Field)

	Enabled(level zapcore.Level) bool
	Sync() error
	GetSubLoggerWithFields(fields ...zap.Field) ILogger
}

type zLogger struct {
	logger  *zap.Logger
	slogger *zap.SugaredLogger
}

func newzLogger(logger *zap.Logger) *zLogger {
	return &zLogger{
		logger:  logger,
		slogger: logger.Sugar(),
	}
}

// Debugw 输出定制化的"Debug"级别日志信息；
func (z *zLogger) Debugw(msg string, keysAndValues ...any) {
	z.slogger.Debugw(msg, keysAndValues...)
}

// Debugx 以zapfield方式，极速输出定制化的"Debug"级别日志信息；
func (z *zLogger) Debugx(msg string, fields ...zapcore.Field) {
	z.logger.Debug(msg, fields...)
}

// Infow 输出定制化的"Info"级别日志信息；
func (z *zLogger) Infow(msg string, keysAndValues ...any) {
	z.slogger.Infow(msg, keysAndValues...)
}

// Infox 以zapfield方式，极速输出定制化的"Info"级别日志信息；
func (z *zLogger) Infox(msg string, fields ...zapcore.Field) {
	z.logger.Info(msg, fields...)
}

// Warnw 输出定制化的"Warn"级别日志信息；
func (z *zLogger) Warnw(msg string, keysAndValues ...any) {
	z.slogger.Warnw(msg, keysAndValues...)
}

// Warnx 以zapfield方式，极速输出定制化的"Warn"级别日志信息；
func (z *zLogger) Warnx(msg string, fields ...zapcore.Field) {
	z.logger.Warn(msg, fields...)
}

// Errorw 输出定制化的"Error"级别日志信息，附带调用堆栈；
func (z *zLogger) Errorw(msg string, keysAndValues ...any) {
	z.slogger.Errorw(msg, keysAndValues...)
}

// Errorx 以zapfield方式，极速输出定制化的"Error"级别日志信息；
func (z *zLogger) Errorx(msg string, fields ...zapcore.Field) {
	z.logger.Error(msg, fields...)
}

// Enabled 判断指定级别的日志是否会被输出
func (z *zLogger) Enabled(level zapcore.Level) bool {
	return z.logger.Core().Enabled(level)
}

// Sync 将缓冲中的日志落盘
func (z *zLogger) Sync() error {
	return z.logger.Sync()
}

// GetSubLoggerWithFields 派生一个携带固定字段的子logger
func (z *zLogger) GetSubLoggerWithFields(fields ...zap.Field) ILogger {
	return newzLogger(z.logger.With(fields...))
}
