package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type implLogger struct {
	log *logrus.Entry
}

// New creates a console logger writing to stderr. Debug mode lowers the
// threshold so stage-level detail reaches the terminal.
func New(debug bool) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &implLogger{log: logrus.NewEntry(l)}
}

// NewJob creates the per-job logger: everything goes to the job log file
// (rotated, so a rerun against the same location never grows unbounded),
// and to stderr as well when debug is set. The returned closer flushes the
// file sink; callers close it when the job reaches a terminal state.
func NewJob(jobID, logPath string, debug bool) (Logger, io.Closer) {
	file := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
	}

	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	l.SetLevel(logrus.DebugLevel)
	if debug {
		l.SetOutput(io.MultiWriter(file, os.Stderr))
	} else {
		l.SetOutput(file)
	}

	return &implLogger{log: l.WithField("job", jobID)}, file
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Errorf(msg, args...)
}
