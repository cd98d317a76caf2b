package utils

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger.
var Logger zerolog.Logger

// LogConfig configures the logging system.
type LogConfig struct {
	Level      string // trace, debug, info, warn, error, fatal, panic
	LogDir     string
	MaxSize    int // max size of one log file (MB)
	MaxBackups int // rotated files to keep
	MaxAge     int // days to keep
	Compress   bool
}

// DefaultLogConfig returns the defaults used when no config is loaded.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      "info",
		LogDir:     "logs",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// InitLogger wires the global logger: colored console output plus rotated
// log files, with errors additionally split into their own file.
func InitLogger(config LogConfig) error {
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	mainLogFile := &lumberjack.Logger{
		Filename:   filepath.Join(config.LogDir, "mlb_scraper.log"),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	errorLogFile := &lumberjack.Logger{
		Filename:   filepath.Join(config.LogDir, "mlb_scraper_error.log"),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	multiWriter := io.MultiWriter(
		consoleWriter,
		mainLogFile,
		&FilteredWriter{Writer: errorLogFile, MinLevel: zerolog.ErrorLevel},
	)

	Logger = zerolog.New(multiWriter).
		With().
		Timestamp().
		Caller().
		Logger()

	log.Logger = Logger

	Logger.Info().
		Str("level", config.Level).
		Str("log_dir", config.LogDir).
		Msg("logging initialized")

	return nil
}

// FilteredWriter forwards only entries at or above MinLevel.
type FilteredWriter struct {
	Writer   io.Writer
	MinLevel zerolog.Level
}

// Write implements io.Writer.
func (w *FilteredWriter) Write(p []byte) (n int, err error) {
	return w.Writer.Write(p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *FilteredWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	if level >= w.MinLevel {
		return w.Writer.Write(p)
	}
	return len(p), nil
}

// Info logs an info message.
func Info(msg string) {
	Logger.Info().Msg(msg)
}

// Infof logs a formatted info message.
func Infof(format string, args ...interface{}) {
	Logger.Info().Msgf(format, args...)
}

// Error logs an error with a message.
func Error(err error, msg string) {
	Logger.Error().Err(err).Msg(msg)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	Logger.Error().Msgf(format, args...)
}

// Warn logs a warning message.
func Warn(msg string) {
	Logger.Warn().Msg(msg)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	Logger.Warn().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(msg string) {
	Logger.Debug().Msg(msg)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	Logger.Debug().Msgf(format, args...)
}

// Fatal logs a fatal error and exits.
func Fatal(err error, msg string) {
	Logger.Fatal().Err(err).Msg(msg)
}
