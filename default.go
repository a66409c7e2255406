package xtrace

import (
	"io"
	"sync/atomic"
)

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Router]

func init() {
	// The global router exists from process start with the documented
	// defaults: all channels, LevelStandard threshold, LevelWarning
	// override, time + file metadata, stdout.
	global.Store(Default())
}

// Default builds a Router with the compiled-in defaults, writing to stdout.
func Default() *Router {
	return NewBuilder().Build()
}

// New builds a Router writing to w with the compiled-in defaults, sets it as
// global, and returns it.
func New(w io.Writer) *Router {
	r := NewBuilder().WithWriter(w).Build()
	SetGlobal(r)
	return r
}

// SetGlobal sets the global Router (Singleton setter).
func SetGlobal(r *Router) { global.Store(r) }

// L returns the global Router. It is never nil.
func L() *Router { return global.Load() }
