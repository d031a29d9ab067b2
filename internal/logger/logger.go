package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how verbosely we log.
// File is optional; with no file and Console off, logs are discarded.
type Config struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file-name"`
	MaxSize    int    `yaml:"max-size"` // megabytes
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"` // days
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
	// Development switches the console encoder to human-readable output.
	Development bool `yaml:"development"`
}

func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(defaultString(cfg.Level, "info")))
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core
	if cfg.File != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), w, level))
	}
	if cfg.Console {
		enc := zapcore.NewJSONEncoder(encoderConfig())
		if cfg.Development {
			ec := encoderConfig()
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
			enc = zapcore.NewConsoleEncoder(ec)
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder
	return ec
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
