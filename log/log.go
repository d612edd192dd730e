package log

import (
	"sync"

	"go.uber.org/zap"
)

var (
	_globalMu     sync.RWMutex
	_globalLogger Logger = NewZapLogger(zap.NewNop())
)

// Logger takes a message followed by alternating keys and values.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

func Debug(msg string, keysAndValues ...interface{}) {
	Global().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	Global().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	Global().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	Global().Error(msg, keysAndValues...)
}

func Global() Logger {
	_globalMu.RLock()
	defer _globalMu.RUnlock()
	return _globalLogger
}

// ReplaceGlobal swaps the package logger. A nil logger is ignored.
func ReplaceGlobal(l Logger) {
	if l == nil {
		return
	}
	_globalMu.Lock()
	defer _globalMu.Unlock()
	_globalLogger = l
}

func NewZapLogger(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &ZapLogger{SugaredLogger: z.Sugar()}
}

type ZapLogger struct {
	*zap.SugaredLogger
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

func (l *ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
