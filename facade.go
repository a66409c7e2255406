package xtrace

// Facade helpers using the global Singleton router.
// Usage: xtrace.Log(xtrace.ChannelNetwork, xtrace.LevelWarning, "retrying %s", addr)

// Log emits a message on the global router.
func Log(ch Channel, level Level, format string, args ...any) {
	L().log(1, ch, level, format, args...)
}

// Print emits at LevelStandard on the global router.
func Print(ch Channel, format string, args ...any) {
	L().log(1, ch, LevelStandard, format, args...)
}

// Enabled reports whether the global router would print ch at level.
func Enabled(ch Channel, level Level) bool { return L().Enabled(ch, level) }

// SetChannels replaces the enabled channel set on the global router.
func SetChannels(ch Channel) { L().SetChannels(ch) }

// SetLevel replaces the active threshold on the global router.
func SetLevel(level Level) { L().SetLevel(level) }

// SetOverrideLevel replaces the override threshold on the global router.
func SetOverrideLevel(level Level) { L().SetOverrideLevel(level) }

// SetOptions replaces the output options on the global router.
func SetOptions(opts Options) { L().SetOptions(opts) }

// RegisterObserver appends an observer to the global router.
func RegisterObserver(o Observer) { L().RegisterObserver(o) }
