package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dev   bool   `mapstructure:"dev"`
}

// NewLogger builds the zap logger shared across the binary.
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		if err := level.Set(conf.Level); err != nil {
			panic(err)
		}
	}

	var zapConf zap.Config
	if conf.Dev {
		zapConf = zap.NewDevelopmentConfig()
		zapConf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConf = zap.NewProductionConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
