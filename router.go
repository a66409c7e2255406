package xtrace

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xclock"
)

// Router is the filtering-and-formatting decision engine. Every log call is
// handed to all registered observers, run through the filter predicate
// against the current settings, and, if it passes, rendered as one console
// line in a fixed fragment order.
//
// Settings are read on every call via an atomic snapshot and replaced
// copy-on-write under setMu, so runtime toggles never race with callers.
type Router struct {
	w     io.Writer
	clock xclock.Clock

	settings atomic.Pointer[settings]
	setMu    sync.Mutex

	// Observers: lock-free reads via atomic.Value; synchronized updates via
	// obsMu. Stored value is []Observer and MUST be treated as immutable by
	// readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex

	// outMu serializes writes so concurrent callers never tear a line.
	outMu sync.Mutex
}

// settings is the immutable snapshot of the mutable filter configuration.
type settings struct {
	channels Channel
	level    Level
	override Level
	options  Options
}

func newRouter(cfg Config) *Router {
	r := &Router{
		w:     cfg.Writer,
		clock: cfg.Clock,
	}
	if r.clock == nil {
		r.clock = xclock.Default()
	}
	r.settings.Store(&settings{
		channels: cfg.Channels,
		level:    cfg.Level,
		override: cfg.OverrideLevel,
		options:  cfg.Options,
	})
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		r.observers.Store(obs)
	} else {
		r.observers.Store(([]Observer)(nil))
	}
	return r
}

// Log emits a message on the given channel at the given level. The message
// may be empty, in which case the rendered line falls back to the call-site
// location. Formatting verbs are optional; with no args the format string is
// written as-is.
func (r *Router) Log(ch Channel, level Level, format string, args ...any) {
	r.log(1, ch, level, format, args...)
}

// Print is the default-level call shape: Log at LevelStandard.
func (r *Router) Print(ch Channel, format string, args ...any) {
	r.log(1, ch, LevelStandard, format, args...)
}

// Enabled reports whether a message on ch at level would currently print.
// Use to avoid building expensive messages in hot paths when disabled.
// Observers still see events regardless of this check.
func (r *Router) Enabled(ch Channel, level Level) bool {
	return decide(r.settings.Load(), ch, level) == verdictPrint
}

// log is the single entry point behind Log/Print and the package facade;
// calldepth is the number of frames between the user call and log itself.
func (r *Router) log(calldepth int, ch Channel, level Level, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	e := Event{
		At:       r.clock.Now(),
		Channel:  ch,
		Level:    level,
		Message:  msg,
		Callsite: capture(calldepth + 1),
	}

	r.dispatch(e)

	s := r.settings.Load()
	switch decide(s, ch, level) {
	case verdictMisuse:
		r.diagnoseMisuse(e)
	case verdictPrint:
		buf := getBuf()
		render(buf, e, s.options)
		buf.writeByte('\n')
		r.writeLine(buf.b)
		putBuf(buf)
		if s.options.Has(OptionAssertOnError) && level == LevelError {
			panic("xtrace: error logged at " + baseFile(e.File) + ":" +
				strconv.Itoa(e.Line) + ": " + msg)
		}
	}
}

type verdict uint8

const (
	verdictSkip verdict = iota
	verdictPrint
	verdictMisuse
)

// decide is the filter predicate: a pure function of the event's channel and
// level against one settings snapshot.
//
//  1. Active level SuppressAll is the global kill switch; nothing prints,
//     not even the misuse diagnostic.
//  2. An event logged at SuppressAll can never be seen and is almost
//     certainly a bug: drop it and report misuse.
//  3. Otherwise print on an ordinary channel+threshold match, or when the
//     override threshold lets the severity through regardless of channel.
//     Override set to SuppressAll disables that escape hatch (no real event
//     level compares >= SuppressAll).
func decide(s *settings, ch Channel, level Level) verdict {
	if s.level == LevelSuppressAll {
		return verdictSkip
	}
	if level == LevelSuppressAll {
		return verdictMisuse
	}
	if s.channels&ch != 0 && s.level <= level {
		return verdictPrint
	}
	if s.override <= level {
		return verdictPrint
	}
	return verdictSkip
}

// diagnoseMisuse writes one direct line naming the call site of a message
// logged at SuppressAll. It bypasses the filtered path: the whole point is
// that the message itself can never appear.
func (r *Router) diagnoseMisuse(e Event) {
	buf := getBuf()
	buf.writeString("Warning: message logged at suppressAll level at ")
	buf.writeString(baseFile(e.File))
	buf.writeByte(':')
	buf.b = strconv.AppendInt(buf.b, int64(e.Line), 10)
	buf.writeString(" (")
	buf.writeString(baseName(e.Function))
	buf.writeString("()); it can never be shown\n")
	r.writeLine(buf.b)
	putBuf(buf)
}

// writeLine performs the single write for one composed line. Write errors
// are not recovered: best effort, non-fatal to the process.
func (r *Router) writeLine(line []byte) {
	r.outMu.Lock()
	_, _ = r.w.Write(line)
	r.outMu.Unlock()
}

// dispatch hands the event to every observer in registration order. A panic
// in one observer must not starve the others nor the print path.
func (r *Router) dispatch(e Event) {
	v := r.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	for _, o := range obs {
		notify(o, e)
	}
}

func notify(o Observer, e Event) {
	defer func() { _ = recover() }()
	o.Receive(e)
}

// SetChannels replaces the set of enabled channels.
func (r *Router) SetChannels(ch Channel) {
	r.mutate(func(s *settings) { s.channels = ch })
}

// SetLevel replaces the active threshold level.
func (r *Router) SetLevel(level Level) {
	r.mutate(func(s *settings) { s.level = level })
}

// SetOverrideLevel replaces the override threshold; LevelSuppressAll turns
// the override escape hatch off.
func (r *Router) SetOverrideLevel(level Level) {
	r.mutate(func(s *settings) { s.override = level })
}

// SetOptions replaces the output-metadata option set.
func (r *Router) SetOptions(opts Options) {
	r.mutate(func(s *settings) { s.options = opts })
}

// Options returns the current option set.
func (r *Router) Options() Options { return r.settings.Load().options }

func (r *Router) mutate(apply func(*settings)) {
	r.setMu.Lock()
	defer r.setMu.Unlock()
	next := *r.settings.Load()
	apply(&next)
	r.settings.Store(&next)
}

// RegisterObserver appends o to the ordered observer list. Observers receive
// every subsequent event unconditionally, before filtering.
func (r *Router) RegisterObserver(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	cur := r.snapshotObservers()
	cur = append(cur, o)
	r.observers.Store(cur)
}

func (r *Router) snapshotObservers() []Observer {
	v := r.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}
