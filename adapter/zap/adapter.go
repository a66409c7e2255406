package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xtrace"
)

// Observer bridges xtrace events into go.uber.org/zap.
//
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Guarantees RFC3339Nano "ts" precision by writing it as a string field.
//   - SuppressAll events are dropped outright; the router already diagnoses
//     that misuse on the console.
//
// Optional behavior: SetMinLevel leverages zap.AtomicLevel when provided at
// construction time. If no AtomicLevel is provided, SetMinLevel is a no-op.
type Observer struct {
	l  *zap.Logger
	al *zap.AtomicLevel // optional, enables SetMinLevel
}

// New creates an observer for the provided zap logger.
func New(l *zap.Logger) *Observer {
	if l == nil {
		l = zap.NewNop()
	}
	return &Observer{l: l}
}

// NewWithAtomicLevel creates an observer and wires a zap.AtomicLevel so
// SetMinLevel can dynamically adjust the backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Observer {
	if l == nil {
		l = zap.NewNop()
	}
	return &Observer{l: l, al: al}
}

// Receive emits one zap entry per event.
func (o *Observer) Receive(e xtrace.Event) {
	if e.Level == xtrace.LevelSuppressAll {
		return
	}
	zlvl := toZapLevel(e.Level)

	ce := o.l.Check(zlvl, e.Message)
	if ce == nil {
		return
	}

	zfs := []zap.Field{
		zap.String("ts", e.At.UTC().Format(time.RFC3339Nano)),
		zap.String("channel", e.Channel.String()),
		zap.Uint64("goroutine", e.Goroutine),
	}
	if e.File != "" {
		zfs = append(zfs, zap.String("file", e.File), zap.Int("line", e.Line))
	}
	if e.Function != "" {
		zfs = append(zfs, zap.String("func", e.Function))
	}
	ce.Write(zfs...)
}

// SetMinLevel adjusts the backend filter when an AtomicLevel was provided.
func (o *Observer) SetMinLevel(l xtrace.Level) {
	if o.al == nil {
		return
	}
	o.al.SetLevel(toZapLevel(l))
}

// toZapLevel converts xtrace.Level to zapcore.Level. SuppressAll maps to the
// highest filter value so nothing at or below Error passes it.
func toZapLevel(l xtrace.Level) zapcore.Level {
	switch l {
	case xtrace.LevelVerbose:
		return zapcore.DebugLevel
	case xtrace.LevelStandard:
		return zapcore.InfoLevel
	case xtrace.LevelWarning:
		return zapcore.WarnLevel
	case xtrace.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InvalidLevel
	}
}
