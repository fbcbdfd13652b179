package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Makzui/phone-book/pkg/types"
)

// newLogger builds a zap logger writing human-readable lines to w at the
// configured level, plus JSON lines to a rotated file when cfg.LogFile is set.
func newLogger(cfg types.Config, w io.Writer) (*zap.Logger, error) {
	levelText := cfg.LogLevel
	if levelText == "" {
		levelText = defaultLogLevel
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return nil, err
	}

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.AddSync(w), level),
	}

	if cfg.LogFile != "" {
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, fileSyncer, zap.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
