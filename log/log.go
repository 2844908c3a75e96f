// Package log is gplay's diagnostic log. It is silent unless logs.write or
// logs.stderr is set, and never carries user-facing output.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gplay-cli/gplay/filesystem"
	"github.com/gplay-cli/gplay/key"
	"github.com/gplay-cli/gplay/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup configures the logger from logs.* settings. It may be called again after they change.
func Setup() error {
	var writers []io.Writer

	if viper.GetBool(key.LogsWrite) {
		f, err := openLogFile(time.Now())
		if err != nil {
			return err
		}
		writers = append(writers, f)
	}
	if viper.GetBool(key.LogsStderr) {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		logger = newDiscardLogger()
		return nil
	}

	l := logrus.New()
	l.SetOutput(io.MultiWriter(writers...))

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// Enabled reports whether entries at level are written anywhere.
func Enabled(level logrus.Level) bool {
	return logger.IsLevelEnabled(level)
}

// openLogFile appends to one file per day.
func openLogFile(now time.Time) (io.Writer, error) {
	path := filepath.Join(where.Logs(), now.Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// WithFields returns an entry carrying structured context.
func WithFields(fields map[string]any) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
