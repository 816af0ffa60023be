package xlog

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/DeRuina/timberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// levelController 日志输出基本控制器
	levelController = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// initDefaultLogger 在没有外部调用Setup进行日志库设置的情况下，输出到标准错误；
func initDefaultLogger() {
	rootLogger.CompareAndSwap(nil, build(zapcore.Lock(os.Stderr)))
}

// CloseLogger 系统运行结束时，将日志落盘；
func CloseLogger() {
	if l := rootLogger.Load(); l != nil {
		_ = l.Sync()
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		CallerKey:     "line", // 打印文件名和行数
		LevelKey:      "level",
		MessageKey:    "message",
		TimeKey:       "time",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeTime: func(t time.Time, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(t.Format("2006-01-02 15:04:05.999"))
		},
		EncodeLevel: func(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(strings.ToTitle(level.String()))
		},
		EncodeCaller: func(caller zapcore.EntryCaller, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString("[" + caller.TrimmedPath() + "]")
		},
		EncodeDuration:   zapcore.SecondsDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
}

func build(ws zapcore.WriteSyncer) *zLogger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), ws, levelController)
	// 输出调用点(上跳2行)，Error级别输出调用堆栈
	return newzLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel)))
}

// SetupLogger 设置根logger；logfile为空时输出到标准错误，否则写入滚动切割文件
func SetupLogger(logfile string) {
	if logfile == "" {
		rootLogger.Store(build(zapcore.Lock(os.Stderr)))
		return
	}
	rootLogger.Store(build(zapcore.AddSync(fileWriter(logfile))))
}

// SetOutput 将根logger重定向到任意writer，主要用于测试中捕获日志
func SetOutput(w io.Writer) {
	rootLogger.Store(build(zapcore.AddSync(w)))
}

func SetLevel(l zapcore.Level) {
	levelController.SetLevel(l)
}

func fileWriter(path string) io.Writer {
	return &timberjack.Logger{
		Filename:         path,                  // 日志文件路径
		MaxBackups:       3,                     // 最多保留3个备份
		MaxSize:          10,                    // 日志文件最大M
		MaxAge:           7,                     // 最大保存天数
		Compression:      "none",                // 压缩方式, none, gzip, zstd
		LocalTime:        true,                  // 是否使用本地时间
		RotationInterval: 24 * time.Hour,        // 日志轮转时间间隔
		BackupTimeFormat: "2006-01-02-15-04-05", // 日志轮转时间格式
	}
}
