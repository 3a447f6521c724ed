/*
Package zapadapter implements tracing with the zap logger.

Tracing/logging is a cross cutting concern. Packages of this module trace
through the interface of github.com/npillmayer/schuko/tracing only;
applications decide which logger receives the traces. Package zapadapter
uses "go.uber.org/zap" as the means for tracing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zapadapter

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer is our adapter implementation which implements interface
// tracing.Trace, using a zap logger.
type Tracer struct {
	level zap.AtomicLevel
	log   *zap.Logger
}

var _ tracing.Trace = &Tracer{}

// New creates a new Tracer instance, tracing to stderr at level Info.
func New() tracing.Trace {
	t := &Tracer{level: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
	t.SetOutput(os.Stderr)
	return t
}

// NewWithLogger creates a Tracer instance tracing to an existing zap
// logger. The trace level of the tracer filters messages before they are
// handed to the logger.
func NewWithLogger(log *zap.Logger) tracing.Trace {
	return &Tracer{level: zap.NewAtomicLevelAt(zapcore.DebugLevel), log: log}
}

// GetAdapter returns an adapter (i.e., factory for tracing.Trace) to
// be used to initialize (global) tracers.
func GetAdapter() tracing.Adapter {
	return New
}

// P returns a tracer which adds a field to every message. The new tracer
// shares the trace level with t; t itself is left unchanged.
//
// Interface tracing.Trace
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &Tracer{level: t.level, log: t.log.With(zap.Any(key, val))}
}

// Interface tracing.Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	l := t.log.Sugar()
	if t.level.Enabled(zapcore.DebugLevel) {
		l.Debugf(s, args...)
	}
}

// Interface tracing.Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	l := t.log.Sugar()
	if t.level.Enabled(zapcore.InfoLevel) {
		l.Infof(s, args...)
	}
}

// Interface tracing.Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	l := t.log.Sugar()
	if t.level.Enabled(zapcore.ErrorLevel) {
		l.Errorf(s, args...)
	}
}

// Interface tracing.Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level.SetLevel(translateTraceLevel(l))
}

// Interface tracing.Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return translateLogLevel(t.level.Level())
}

// SetOutput routes tracing output to a writer, using zap's console
// encoding.
//
// Interface tracing.Trace
func (t *Tracer) SetOutput(writer io.Writer) {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(writer)), t.level)
	t.log = zap.New(core)
}

func translateLogLevel(l zapcore.Level) tracing.TraceLevel {
	switch l {
	case zapcore.DebugLevel:
		return tracing.LevelDebug
	case zapcore.InfoLevel:
		return tracing.LevelInfo
	case zapcore.ErrorLevel:
		return tracing.LevelError
	}
	return tracing.LevelDebug
}

func translateTraceLevel(l tracing.TraceLevel) zapcore.Level {
	switch l {
	case tracing.LevelDebug:
		return zapcore.DebugLevel
	case tracing.LevelInfo:
		return zapcore.InfoLevel
	case tracing.LevelError:
		return zapcore.ErrorLevel
	}
	return zapcore.DebugLevel
}
