// Package logging builds the file-backed zap logger
// The terminal is owned by the renderer, so nothing is ever written to stdout or stderr
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/vi-field/config"
)

// ServiceName names the root logger
const ServiceName = "vi-field"

// New returns a JSON logger writing to a rotating file, and a closer that flushes and closes it
// Disabled logging yields a no-op logger
func New(cfg config.LoggerConfig) (*zap.Logger, func(), error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() {}, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "logger level %q", cfg.Level)
	}

	sink := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(sink), level)
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(ServiceName)

	closer := func() {
		_ = logger.Sync()
		_ = sink.Close()
	}
	return logger, closer, nil
}
