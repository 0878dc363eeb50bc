package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.SugaredLogger = nil
)

// Initialize - builds the logger singleton with the requested level.
func Initialize(level string) error {
	// convert the textual level into zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	instance = logger.Sugar()
	return nil
}

// Get - returns the logger singleton
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - flushes buffered log entries
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug — Debug level wrapper
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info — Info level wrapper
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn — Warn level wrapper
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error — Error level wrapper
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Panic — Panic level wrapper
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
