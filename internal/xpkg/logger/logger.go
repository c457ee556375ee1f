// Package logger wraps logrus behind a small chainable API. Call sites name
// the action once and attach key/value context as they go:
//
//	mylog.Action("change_status").With("order_id", id).Info("Order status changed")
package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	entry *logrus.Entry
}

// New builds a JSON logger tagged with the service name and hostname.
// LOG_LEVEL=debug switches on debug output.
func New(service string) Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	if os.Getenv("LOG_LEVEL") == "debug" {
		base.SetLevel(logrus.DebugLevel)
	}

	hostname, _ := os.Hostname()
	return Logger{entry: base.WithFields(logrus.Fields{
		"service":  service,
		"hostname": hostname,
	})}
}

// Action tags every subsequent record with the operation being performed.
func (l Logger) Action(action string) Logger {
	return Logger{entry: l.entry.WithField("action", action)}
}

// With attaches key/value pairs. A trailing key without a value is dropped.
func (l Logger) With(args ...any) Logger {
	return Logger{entry: l.entry.WithFields(fields(args))}
}

func (l Logger) Info(message string, args ...any) {
	l.entry.WithFields(fields(args)).Info(message)
}

func (l Logger) Debug(message string, args ...any) {
	l.entry.WithFields(fields(args)).Debug(message)
}

func (l Logger) Warn(message string, args ...any) {
	l.entry.WithFields(fields(args)).Warn(message)
}

func (l Logger) Error(message string, err error) {
	entry := l.entry
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Error(message)
}

func fields(args []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		f[fmt.Sprint(args[i])] = args[i+1]
	}
	return f
}
