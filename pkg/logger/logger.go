// Package logger configures both process loggers from LOG_LVL: the global zap logger used by the
// application code and the global zerolog logger that writes the HTTP access log.
package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/goinvest/internal/config"
)

const timeLayout = "15:04:05 02-01-2006"

type level struct {
	zap     zapcore.Level
	zerolog zerolog.Level
}

var logLvlMap = map[string]level{
	"debug": {zapcore.DebugLevel, zerolog.DebugLevel},
	"info":  {zapcore.InfoLevel, zerolog.InfoLevel},
	"warn":  {zapcore.WarnLevel, zerolog.WarnLevel},
	"error": {zapcore.ErrorLevel, zerolog.ErrorLevel},
}

func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	c := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl.zap),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	zap.ReplaceGlobals(logger)

	zerolog.SetGlobalLevel(lvl.zerolog)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeLayout}).
		With().Timestamp().Logger()

	return nil
}
