package xlog

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootLogger 当前生效的根logger，可在任意goroutine中读取
var rootLogger atomic.Pointer[zLogger]

func root() *zLogger {
	if l := rootLogger.Load(); l != nil {
		return l
	}
	initDefaultLogger()
	return rootLogger.Load()
}

// Debugw 输出定制化的"Debug"级别日志信息；
func Debugw(msg string, keysAndValues ...any) {
	root().Debugw(msg, keysAndValues...)
}

// Infow 输出定制化的"Info"级别日志信息；
func Infow(msg string, keysAndValues ...any) {
	root().Infow(msg, keysAndValues...)
}

// Warnw 输出定制化的"Warn"级别日志信息；
func Warnw(msg string, keysAndValues ...any) {
	root().Warnw(msg, keysAndValues...)
}

// Errorw 输出定制化的"Error"级别日志信息；
func Errorw(msg string, keysAndValues ...any) {
	root().Errorw(msg, keysAndValues...)
}

// Enabled 判断根logger是否输出指定级别
func Enabled(level zapcore.Level) bool {
	return root().Enabled(level)
}

// Named 返回带有"module"字段的子logger
func Named(module string) ILogger {
	return root().GetSubLoggerWithFields(zap.String("module", module))
}
