package xtrace

import (
	"io"
	"testing"
)

func newBenchRouter(opts Options) *Router {
	return NewBuilder().
		WithWriter(io.Discard).
		WithOptions(opts).
		Build()
}

func BenchmarkLog_NoMetadata(b *testing.B) {
	r := newBenchRouter(OptionsNone)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Log(ChannelNetwork, LevelStandard, "ok")
	}
}

func BenchmarkLog_DefaultMetadata(b *testing.B) {
	r := newBenchRouter(OptionsDefault)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Log(ChannelNetwork, LevelStandard, "ok")
	}
}

func BenchmarkLog_AllMetadata(b *testing.B) {
	r := newBenchRouter(OptionTimeVerbose | OptionChannel | OptionThreadVerbose |
		OptionLevel | OptionFileVerbose | OptionFunctionVerbose)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Log(ChannelNetwork, LevelStandard, "ok")
	}
}

func BenchmarkLog_FilteredOut(b *testing.B) {
	r := newBenchRouter(OptionsDefault)
	r.SetChannels(ChannelUI)
	r.SetOverrideLevel(LevelSuppressAll)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Log(ChannelNetwork, LevelVerbose, "dropped")
	}
}

func BenchmarkEnabled(b *testing.B) {
	r := newBenchRouter(OptionsDefault)
	r.SetChannels(ChannelUI)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r.Enabled(ChannelNetwork, LevelVerbose) {
			b.Fatal("unexpectedly enabled")
		}
	}
}
