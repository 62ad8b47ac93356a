package logger

import (
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
)

// NewRootLogger creates a new root logger from the provided configuration.
// Empty settings are taken from DefaultCfg.
func NewRootLogger(cfg Config) (*zap.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = DefaultCfg.Level
	}
	if cfg.Encoding == "" {
		cfg.Encoding = DefaultCfg.Encoding
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = DefaultCfg.OutputPaths
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := &zap.Config{
		Level:             level,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, ierrors.Errorf("failed to build root logger: %w", err)
	}

	return logger, nil
}
