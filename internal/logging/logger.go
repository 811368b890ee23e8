package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global instance. It stays a no-op until InitLogger
// runs, so library callers that never configure logging are silent.
var Logger = zap.NewNop()

// InitLogger sets up a console core plus a JSON file core under
// ./logs, mirrored after the application log the rest of the stack
// writes.
func InitLogger(logLevel string) error {
	var level zapcore.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logFile), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), level),
	)

	Logger = zap.New(core, zap.Fields(zap.String("service", "fridge-planner")))
	zap.ReplaceGlobals(Logger)
	return nil
}

func LogInfo(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func LogDebug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Sync flushes buffered entries; call on shutdown.
func Sync() {
	_ = Logger.Sync()
}
