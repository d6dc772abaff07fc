// Package log holds the process-wide logger of the command line tools.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger = zap.NewNop()

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}

// Init selects a logger for a level name. "debug" selects the development
// logger, any other valid zap level a production logger of that level.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	if lvl == zapcore.DebugLevel {
		InitDevelopmentLogger()
		return nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Logger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }

var (
	String     = zap.String
	Int        = zap.Int
	Float64    = zap.Float64
	ErrorField = zap.Error
)
