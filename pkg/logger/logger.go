package logger

import (
	"fmt"

	"github.com/GlebRadaev/eduwallet/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout = "15:04:05 02-01-2006"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Build returns a logger for the configured level and format. Console output
// is meant for a terminal; json is what the log shipper in deployments reads.
func Build(conf *config.Config) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	format := conf.LogFormat
	if format == "" {
		format = FormatConsole
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	switch format {
	case FormatConsole:
		encodeConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		encodeConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON:
		encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         format,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger.Named("eduwallet"), nil
}

// InitLogger replaces the global zap logger used by repositories, services and jobs.
func InitLogger(conf *config.Config) error {
	logger, err := Build(conf)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
