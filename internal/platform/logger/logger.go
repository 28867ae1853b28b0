package logger

import (
	"strings"

	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Init builds the process-wide logger. Mode follows APP_ENV: anything other
// than "prod"/"production" gets the development config.
func Init(mode string) error {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	sugar = zapLogger.Sugar()
	return nil
}

func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

// current falls back to a no-op logger so packages can log before Init (or
// under test) without a nil check at every call site.
func current() *zap.SugaredLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return sugar
}

func Debug(msg string, keysAndValues ...interface{}) {
	current().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	current().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	current().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	current().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	current().Fatalw(msg, keysAndValues...)
}
