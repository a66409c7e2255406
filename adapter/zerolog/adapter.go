package zerolog

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xtrace"
)

// Observer bridges xtrace events into rs/zerolog. It sees every event,
// including ones the console filter drops, so a structured sink can keep the
// full stream while the console stays terse.
type Observer struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Observer {
	return &Observer{l: l}
}

// Receive emits one zerolog entry per event.
//   - The single authoritative timestamp from the router is passed as "ts".
//   - SuppressAll is mapped to Disabled so misuse events never surface twice;
//     the router already prints its own diagnostic.
func (o *Observer) Receive(e xtrace.Event) {
	zlvl := mapLevel(e.Level)

	// Fast path: drop early if below the backend's min level (no Event allocation).
	if zlvl < o.l.GetLevel() || zlvl == zerolog.Disabled {
		return
	}

	ev := o.l.WithLevel(zlvl)
	ev.Str("ts", e.At.UTC().Format(time.RFC3339Nano))
	ev.Str("channel", e.Channel.String())
	if e.File != "" {
		ev.Str("file", e.File)
		ev.Int("line", e.Line)
	}
	if e.Function != "" {
		ev.Str("func", e.Function)
	}
	ev.Uint64("goroutine", e.Goroutine)
	ev.Msg(e.Message)
}

// mapLevel converts xtrace.Level to zerolog.Level.
func mapLevel(l xtrace.Level) zerolog.Level {
	switch l {
	case xtrace.LevelVerbose:
		return zerolog.DebugLevel
	case xtrace.LevelStandard:
		return zerolog.InfoLevel
	case xtrace.LevelWarning:
		return zerolog.WarnLevel
	case xtrace.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
