package xtrace

import "testing"

func TestChannelBitsAreDisjoint(t *testing.T) {
	t.Parallel()

	builtins := []Channel{ChannelFileIO, ChannelNetwork, ChannelRendering, ChannelUI, ChannelTemp}
	var union Channel
	for _, c := range builtins {
		if c&(c-1) != 0 {
			t.Fatalf("channel %s is not a single bit: %b", c, c)
		}
		if union&c != 0 {
			t.Fatalf("channel %s overlaps another builtin", c)
		}
		union |= c
	}
	if !ChannelAll.Has(union) {
		t.Fatal("ChannelAll must contain every builtin")
	}
}

func TestChannelSetMembership(t *testing.T) {
	t.Parallel()

	set := ChannelUI | ChannelFileIO
	if !set.Has(ChannelUI) || !set.Has(ChannelFileIO) {
		t.Fatal("members missing from union")
	}
	if set.Has(ChannelNetwork) {
		t.Fatal("non-member reported present")
	}
}

func TestChannelNames(t *testing.T) {
	t.Parallel()

	if got := ChannelNetwork.String(); got != "network" {
		t.Fatalf("builtin name: got %q", got)
	}

	custom := Channel(1) << 23
	if got := custom.String(); got != "ch23" {
		t.Fatalf("fallback tag: got %q", got)
	}
	RegisterChannelName(custom, "audio")
	if got := custom.String(); got != "audio" {
		t.Fatalf("registered name: got %q", got)
	}
}

func TestChannelIndex(t *testing.T) {
	t.Parallel()

	if got := ChannelFileIO.Index(); got != 0 {
		t.Fatalf("fileIO index: got %d", got)
	}
	if got := ChannelTemp.Index(); got != 4 {
		t.Fatalf("temp index: got %d", got)
	}
	if got := ChannelNone.Index(); got != -1 {
		t.Fatalf("zero channel index: got %d", got)
	}
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Level{LevelVerbose, LevelStandard, LevelWarning, LevelError, LevelSuppressAll}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Fatalf("%s not below %s", ordered[i-1], ordered[i])
		}
	}
}

func TestOptionsHas(t *testing.T) {
	t.Parallel()

	opts := OptionTime | OptionFile
	if !opts.Has(OptionTime) || !opts.Has(OptionFile) {
		t.Fatal("default flags missing")
	}
	if opts.Has(OptionThread) {
		t.Fatal("unset flag reported present")
	}
	if OptionsDefault != OptionTime|OptionFile {
		t.Fatalf("documented default changed: %b", OptionsDefault)
	}
}
