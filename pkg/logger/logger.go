// logger.go - File-backed logging for the compiler hook
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Fatal(format string, args ...any)
}

type logger struct {
	log   *zap.Logger
	sugar *zap.SugaredLogger
}

// NewLogger creates a logger writing to a dated file under logsDir. The hook
// runs in place of a compiler, so it never writes to stdout or stderr: those
// streams are captured by the build system and belong to the real compiler.
func NewLogger(logsDir, level, appName string) (Logger, error) {
	if logsDir == "" {
		return nil, fmt.Errorf("invalid logs directory")
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	currentDate := time.Now().Format("20060102")
	logFileName := filepath.Join(logsDir, fmt.Sprintf("%s-%s.log", appName, currentDate))

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    50, // megabytes
		MaxBackups: 0,
		MaxAge:     5, // days
		Compress:   true,
		LocalTime:  true,
	})

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	logLevel, exists := logLevelMap[strings.ToLower(level)]
	if !exists {
		logLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		fileWriter,
		logLevel,
	)

	zapLogger := zap.New(core, zap.AddCaller())
	return &logger{
		log:   zapLogger,
		sugar: zapLogger.Sugar(),
	}, nil
}

func (l *logger) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *logger) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *logger) Warn(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *logger) Error(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

func (l *logger) Fatal(format string, args ...any) {
	l.sugar.Fatalf(format, args...)
}
