package config

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type LoggingConfig struct {
	Console LoggerConfig `yaml:"console"`
}

// Prepare returns our standard logger, writing to sink. Commands write their
// results to stdout, so the program passes stderr here. Level "none" discards
// everything.
func (conf *LoggingConfig) Prepare(sink io.Writer) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	minLevel := zapcore.InfoLevel
	switch conf.Console.Level {
	case "normal":
	case "debug":
		minLevel = zapcore.DebugLevel
	default:
		return zap.NewNop()
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(sink)), minLevel)
	return zap.New(core)
}
