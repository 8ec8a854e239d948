package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevelHook is a custom hook for logrus to send different levels of logs to different outputs and formats
type LogLevelHook struct {
	Writer     map[logrus.Level]io.Writer
	Formatters map[logrus.Level]logrus.Formatter
	LogLevels  []logrus.Level
}

// NewLogLevelHook initializes the custom hook. Info goes to stdout as plain
// messages, every other level goes to stderr.
func NewLogLevelHook() *LogLevelHook {
	hook := &LogLevelHook{LogLevels: logrus.AllLevels}
	hook.SetWriters(os.Stdout, os.Stderr)
	hook.SetFormatter(&logrus.TextFormatter{FullTimestamp: true}, &SimpleFormatter{})
	return hook
}

// SetWriters routes Info to stdout and the other levels to stderr.
func (hook *LogLevelHook) SetWriters(stdout, stderr io.Writer) {
	hook.Writer = map[logrus.Level]io.Writer{}
	for _, level := range logrus.AllLevels {
		hook.Writer[level] = stderr
	}
	hook.Writer[logrus.InfoLevel] = stdout
}

// SetFormatter uses info for the Info level and formatter for the others.
func (hook *LogLevelHook) SetFormatter(formatter, info logrus.Formatter) {
	hook.Formatters = map[logrus.Level]logrus.Formatter{}
	for _, level := range logrus.AllLevels {
		hook.Formatters[level] = formatter
	}
	hook.Formatters[logrus.InfoLevel] = info
}

// Levels defines on which log levels this hook would trigger
func (hook *LogLevelHook) Levels() []logrus.Level {
	return hook.LogLevels
}

// Fire is called by logrus when a log entry needs to be logged
func (hook *LogLevelHook) Fire(entry *logrus.Entry) error {
	writer, ok := hook.Writer[entry.Level]
	if !ok {
		writer = os.Stdout
	}

	formatter, ok := hook.Formatters[entry.Level]
	if !ok {
		formatter = hook.Formatters[logrus.InfoLevel]
	}

	bytes, err := formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = writer.Write(bytes)
	return err
}

// SimpleFormatter is a custom formatter that only outputs the message
type SimpleFormatter struct{}

func (f *SimpleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(entry.Message + "\n"), nil
}
