package logger // package logger wires the process-wide zap logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// base is the process-wide logger. It starts as a no-op so packages can log
// safely before Init runs (tests in particular never call Init).
var base = zap.NewNop()

// Init builds the global JSON logger. When file is non-empty output goes to
// a size-rotated log file, otherwise to stdout. Unknown levels fall back to
// info.
func Init(level, file string) error {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var syncer zapcore.WriteSyncer
	if file != "" {
		syncer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		})
	} else {
		syncer = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), syncer, lvl)
	base = zap.New(core, zap.AddCaller())
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	return base
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = base.Sync()
}
