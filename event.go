package xtrace

import "time"

// Event is the ephemeral record of one log call. It is created per call,
// handed to every observer, rendered if the filter passes, and discarded.
type Event struct {
	At      time.Time
	Channel Channel
	Level   Level
	Message string
	Callsite
}

// Callsite identifies where a log call originated.
type Callsite struct {
	// File is the full path as reported by the runtime; Line the line number.
	File string
	Line int
	// Function is the fully qualified name of the enclosing function
	// (e.g. "github.com/acme/app/net.(*Conn).Read").
	Function string
	// Goroutine is the id of the calling goroutine; State its scheduler
	// state at capture time ("running" for the caller itself).
	Goroutine uint64
	State     string
}

// Observer is notified of every event, in registration order, before and
// regardless of filtering (Observer pattern). Implementations MUST be
// concurrency-safe. A panicking observer is isolated: the remaining
// observers and the normal print path still run.
type Observer interface {
	Receive(e Event)
}

// ObserverFunc adapter.
type ObserverFunc func(Event)

func (f ObserverFunc) Receive(e Event) { f(e) }
