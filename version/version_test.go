package version

import (
	"runtime/debug"
	"testing"
)

func stub(t *testing.T, version, commit, buildTime string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origBuildTime, origRead := Version, Commit, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, BuildTime, readBuildInfo = origVersion, origCommit, origBuildTime, origRead
	})
	Version, Commit, BuildTime = version, commit, buildTime
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGet_Ldflags(t *testing.T) {
	stub(t, "1.2.0", "abc1234def", "2024-01-15T10:30:00Z", nil)

	info := Get()
	if info.Version != "1.2.0" || info.Commit != "abc1234" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("expected build year 2024, got %d", info.BuildDate.Year())
	}
	if got, want := info.String(), "1.2.0-abc1234 (built 2024-01-15T10:30:00Z)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGet_BuildInfoFallback(t *testing.T) {
	stub(t, "dev", "", "", &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T00:00:00Z"},
		},
	})

	info := Get()
	if info.Short() != "0.3.1-0123456-dirty" {
		t.Errorf("Short() = %q", info.Short())
	}
	if info.GoVersion != "go1.26.0" || info.BuildDate.Year() != 2025 {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestGet_DevelBuild(t *testing.T) {
	stub(t, "dev", "", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	if got := Get().String(); got != "dev" {
		t.Errorf("String() = %q, want %q", got, "dev")
	}
}

func TestGet_LdflagsWinOverBuildInfo(t *testing.T) {
	stub(t, "2.0.0", "feedbee", "", &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.0.1"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0000000000"}},
	})

	if got := Get().Short(); got != "2.0.0-feedbee" {
		t.Errorf("Short() = %q", got)
	}
}
