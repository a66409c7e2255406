package xtrace

import (
	"io"
	"os"

	"github.com/trickstertwo/xclock"
)

// Config for constructing a Router (Factory data structure). The zero value
// is not useful; NewBuilder fills in the documented defaults.
type Config struct {
	Writer        io.Writer // destination for rendered lines; default os.Stdout
	Channels      Channel
	Level         Level
	OverrideLevel Level
	Options       Options
	Observers     []Observer
	Clock         xclock.Clock // optional; defaults to xclock.Default()
}

// Builder separates construction from representation (Builder pattern).
// Defaults: channels=ChannelAll, level=LevelStandard,
// override=LevelWarning, options=OptionsDefault, writer=os.Stdout.
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		Writer:        os.Stdout,
		Channels:      ChannelAll,
		Level:         LevelStandard,
		OverrideLevel: LevelWarning,
		Options:       OptionsDefault,
	}}
}

func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.cfg.Writer = w
	return b
}

func (b *Builder) WithChannels(ch Channel) *Builder {
	b.cfg.Channels = ch
	return b
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithOverrideLevel(l Level) *Builder {
	b.cfg.OverrideLevel = l
	return b
}

func (b *Builder) WithOptions(o Options) *Builder {
	b.cfg.Options = o
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Router. There is no failure mode: every combination
// of channels, levels and options is legal, and a nil writer falls back to
// os.Stdout.
func (b *Builder) Build() *Router {
	if b.cfg.Writer == nil {
		b.cfg.Writer = os.Stdout
	}
	return newRouter(b.cfg)
}
