package pivotset

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the leveled logger resource the App and its modules write to.
// Debug output is off unless enabled; the other levels always print.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type logLevel uint8

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = [...]string{
	levelDebug: "DEBUG",
	levelInfo:  "INFO",
	levelWarn:  "WARN",
	levelError: "ERROR",
}

// DefaultLogger writes "[prefix] LEVEL: message" lines. Debug and info go to
// the out writer, warnings and errors to the err writer.
type DefaultLogger struct {
	debug atomic.Bool
	tag   string
	out   *log.Logger
	err   *log.Logger
}

// NewWriterLogger logs debug and info lines to out, warnings and errors to errOut.
func NewWriterLogger(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	const flags = log.LstdFlags | log.Lmicroseconds

	l := &DefaultLogger{
		out: log.New(out, "", flags),
		err: log.New(errOut, "", flags),
	}
	if prefix != "" {
		l.tag = "[" + prefix + "] "
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool    { return l.debug.Load() }
func (l *DefaultLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *DefaultLogger) emit(lvl logLevel, format string, args ...any) {
	dst := l.out
	if lvl >= levelWarn {
		dst = l.err
	}
	dst.Printf("%s%s: %s", l.tag, levelNames[lvl], fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.DebugEnabled() {
		l.emit(levelDebug, format, args...)
	}
}

func (l *DefaultLogger) Infof(format string, args ...any)  { l.emit(levelInfo, format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.emit(levelWarn, format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.emit(levelError, format, args...) }

// LoggingModule installs a DefaultLogger. Nil writers fall back to stdout and
// stderr.
type LoggingModule struct {
	Prefix string
	Debug  bool
	Out    io.Writer
	Err    io.Writer
}

func (m LoggingModule) Install(app *App) {
	out, errOut := m.Out, m.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	app.addResources(NewWriterLogger(out, errOut, m.Prefix, m.Debug))
}

// discardLogger is handed out when no LoggingModule was installed.
type discardLogger struct{}

func (discardLogger) DebugEnabled() bool { return false }

func (discardLogger) SetDebug(bool) {}

func (discardLogger) Debugf(string, ...any) {}

func (discardLogger) Infof(string, ...any) {}

func (discardLogger) Warnf(string, ...any) {}

func (discardLogger) Errorf(string, ...any) {}

// Logger returns the installed logger, or one that drops everything. It never
// returns nil.
func (app *App) Logger() Logger {
	if app != nil {
		for _, r := range app.resources {
			if l, ok := r.(Logger); ok {
				return l
			}
		}
	}
	return discardLogger{}
}
