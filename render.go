package xtrace

import (
	"strconv"
	"sync"
)

// buffer is a simple growing byte buffer, reused across log calls.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

// pad separates fragments with a single space. The first fragment of a line
// gets no leading space.
func (buf *buffer) pad() {
	if len(buf.b) > 0 {
		buf.b = append(buf.b, ' ')
	}
}

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 256)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 16*1024 {
		bufPool.Put(buf)
	}
}

const (
	timeLayout        = "15:04:05"
	timeVerboseLayout = "2006-01-02 15:04:05.000"
)

// render appends the line for e, without trailing newline, in the fixed
// fragment order: level literal, timestamp, channel, thread, level name,
// file:line, function, message. The order never changes; option flags only
// decide which fragments appear.
func render(buf *buffer, e Event, opts Options) {
	switch e.Level {
	case LevelWarning:
		buf.writeString("Warning:")
	case LevelError:
		buf.writeString("Error:")
	}

	if opts.Has(OptionTimeVerbose) {
		buf.pad()
		buf.b = e.At.AppendFormat(buf.b, timeVerboseLayout)
	} else if opts.Has(OptionTime) {
		buf.pad()
		buf.b = e.At.AppendFormat(buf.b, timeLayout)
	}

	if opts.Has(OptionChannel) {
		buf.pad()
		buf.writeByte('[')
		buf.writeString(e.Channel.String())
		buf.writeByte(']')
	}

	if opts.Has(OptionThreadVerbose) {
		buf.pad()
		buf.writeString("[t")
		buf.b = strconv.AppendUint(buf.b, e.Goroutine, 10)
		if e.State != "" {
			buf.writeString(" (")
			buf.writeString(e.State)
			buf.writeByte(')')
		}
		buf.writeByte(']')
	} else if opts.Has(OptionThread) {
		buf.pad()
		buf.writeString("[t")
		buf.b = strconv.AppendUint(buf.b, e.Goroutine, 10)
		buf.writeByte(']')
	}

	if opts.Has(OptionLevel) {
		buf.pad()
		buf.writeString(e.Level.String())
	}

	// An empty message carries no meaning of its own, so the location
	// fragments switch on to say at least where the call happened.
	forceLocation := e.Message == ""

	if opts.Has(OptionFileVerbose) {
		buf.pad()
		buf.writeString(e.File)
		buf.writeByte(':')
		buf.b = strconv.AppendInt(buf.b, int64(e.Line), 10)
	} else if opts.Has(OptionFile) || forceLocation {
		buf.pad()
		buf.writeString(baseFile(e.File))
		buf.writeByte(':')
		buf.b = strconv.AppendInt(buf.b, int64(e.Line), 10)
	}

	if opts.Has(OptionFunctionVerbose) {
		buf.pad()
		buf.writeString(e.Function)
	} else if opts.Has(OptionFunction) || forceLocation {
		buf.pad()
		buf.writeString(baseName(e.Function))
		buf.writeString("()")
	}

	if e.Message != "" {
		buf.pad()
		buf.writeString(e.Message)
	}
}
