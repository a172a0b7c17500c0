package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

// withBuild pins the link-time variables and embedded build info for one test.
func withBuild(t *testing.T, version, commit, date string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origDate, origRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = origVersion, origCommit, origDate, origRead
	})

	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestString(t *testing.T) {
	vcs := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/jmylchreest/palettegen", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name     string
		version  string
		commit   string
		date     string
		build    *debug.BuildInfo
		prefix   string
		contains []string
		excludes []string
	}{
		{
			name:     "no metadata",
			prefix:   "palettegen version dev (",
			excludes: []string{"commit:", "built:"},
		},
		{
			name:     "link-time values",
			version:  "v1.4.0",
			commit:   "0123456789abcdef",
			date:     "2026-01-02T03:04:05Z",
			build:    vcs,
			prefix:   "palettegen version v1.4.0 (",
			contains: []string{"commit: 01234567,", "built: 2026-01-02T03:04:05Z,", "go1.25.1"},
			excludes: []string{"dirty", "fedcba98"},
		},
		{
			name:     "vcs fallback",
			build:    vcs,
			prefix:   "palettegen version dev (",
			contains: []string{"commit: fedcba98-dirty,", "built: 2026-03-04T05:06:07Z,"},
		},
		{
			name:     "short commit kept whole",
			commit:   "abc",
			prefix:   "palettegen version dev (",
			contains: []string{"commit: abc,"},
		},
		{
			name:   "module version",
			build:  &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}},
			prefix: "palettegen version v0.3.1 (",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit, tt.date, tt.build)

			got := String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("String() = %q, want prefix %q", got, tt.prefix)
			}
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("String() = %q, want it to contain %q", got, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("String() = %q, want it without %q", got, s)
				}
			}
		})
	}
}

func TestShort(t *testing.T) {
	withBuild(t, "", "", "", &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}})
	if got := Short(); got != "v0.3.1" {
		t.Errorf("Short() = %q, want v0.3.1", got)
	}

	withBuild(t, "v2.0.0", "", "", &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}})
	if got := Short(); got != "v2.0.0" {
		t.Errorf("Short() = %q, want v2.0.0", got)
	}
}
