package xtrace

import (
	"runtime"
	"strings"
)

// capture resolves the call site skip+1 frames above itself, plus the calling
// goroutine's identity.
func capture(skip int) Callsite {
	cs := Callsite{File: "?", Function: "?"}
	pc, file, line, ok := runtime.Caller(skip + 1)
	if ok {
		cs.File = file
		cs.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			cs.Function = fn.Name()
		}
	}
	cs.Goroutine, cs.State = goroutineID()
	return cs
}

// goroutineID parses the current goroutine's id and scheduler state from the
// stack header ("goroutine 18 [running]:"), the only stable per-goroutine
// identifier the runtime exposes.
func goroutineID() (uint64, string) {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := string(buf[:n])

	header, ok := strings.CutPrefix(header, "goroutine ")
	if !ok {
		return 0, ""
	}
	var id uint64
	i := 0
	for i < len(header) && header[i] >= '0' && header[i] <= '9' {
		id = id*10 + uint64(header[i]-'0')
		i++
	}
	state := ""
	if j := strings.IndexByte(header, '['); j >= 0 {
		if k := strings.IndexByte(header[j:], ']'); k > 0 {
			state = header[j+1 : j+k]
		}
	}
	return id, state
}

// baseName trims a fully qualified function name down to the bare identifier:
// "github.com/acme/app/net.(*Conn).Read" -> "Read".
func baseName(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}

// baseFile trims a file path down to its basename. runtime paths always use
// forward slashes, even on Windows.
func baseFile(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
