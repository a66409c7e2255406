package xtrace

// Options is a set of independent flags controlling which metadata fragments
// are appended to a rendered line. Any subset is legal. For each plain/verbose
// pair the verbose flag supersedes the plain one when both are set.
type Options uint32

const (
	// OptionTime appends the time of day (15:04:05).
	OptionTime Options = 1 << iota
	// OptionTimeVerbose appends the full date and time with millisecond
	// precision (2006-01-02 15:04:05.000).
	OptionTimeVerbose
	// OptionFile appends the basename of the calling file plus line number.
	OptionFile
	// OptionFileVerbose appends the full path of the calling file plus line.
	OptionFileVerbose
	// OptionFunction appends the bare calling function name with a trailing ().
	OptionFunction
	// OptionFunctionVerbose appends the fully qualified function name as captured.
	OptionFunctionVerbose
	// OptionThread appends the calling goroutine id as [t<N>].
	OptionThread
	// OptionThreadVerbose appends the goroutine id and scheduler state as
	// [t<N> (<state>)].
	OptionThreadVerbose
	// OptionChannel appends the channel tag, [<name>] or [ch<N>].
	OptionChannel
	// OptionLevel appends the symbolic level name.
	OptionLevel
	// OptionAssertOnError panics after rendering any error-level line,
	// carrying the message and call site. Debug aid, off by default.
	OptionAssertOnError
)

// OptionsNone renders the bare message (location still appears when the
// message is empty).
const OptionsNone = Options(0)

// OptionsDefault is the compiled-in default set.
const OptionsDefault = OptionTime | OptionFile

// Has reports whether every flag of o2 is set in o.
func (o Options) Has(o2 Options) bool { return o&o2 == o2 }
