package xtrace

// Level ranks message severity. The ordering is total and fixed:
// Verbose < Standard < Warning < Error < SuppressAll.
type Level int8

const (
	LevelVerbose Level = iota
	LevelStandard
	LevelWarning
	LevelError

	// LevelSuppressAll is a sentinel, never a real message severity.
	// As the active level it suppresses every event (global kill switch);
	// as an override level it disables the override escape hatch; attached
	// to an event it is misuse and the event is dropped with a diagnostic.
	LevelSuppressAll
)

var levelNames = [...]string{
	LevelVerbose:     "verbose",
	LevelStandard:    "standard",
	LevelWarning:     "warning",
	LevelError:       "error",
	LevelSuppressAll: "suppressAll",
}

func (l Level) String() string {
	if l < LevelVerbose || l > LevelSuppressAll {
		return "unknown"
	}
	return levelNames[l]
}
