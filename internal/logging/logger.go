package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv selects the log level when --debug is not given.
const LevelEnv = "ACCOUNTPAGE_LOG_LEVEL"

func BuildProduction(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level(debug))
	c.EncoderConfig.StacktraceKey = ""
	c.EncoderConfig.CallerKey = ""

	log, err := c.Build()
	if err != nil {
		return nil, err
	}
	return log, nil
}

func level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return fetchLogLevelByEnv()
}

func fetchLogLevelByEnv() zapcore.Level {
	loglevel := os.Getenv(LevelEnv)

	switch strings.ToLower(loglevel) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
