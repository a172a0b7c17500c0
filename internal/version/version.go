// Package version reports which build of palettegen is running. Release builds
// set the variables below with -ldflags "-X"; other builds fall back to the
// module and VCS metadata the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at link time, e.g.
// -ldflags "-X github.com/jmylchreest/palettegen/internal/version.Version=v1.0.0".
var (
	Version string
	Commit  string
	Date    string
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo resolves the build description. Link-time values win over embedded
// build metadata, and the version is "dev" when neither names one.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok {
		fromBuildInfo(&info, bi)
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

func fromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}

	// VCS settings only describe the checkout when no commit was linked in.
	if info.Commit != "" {
		return
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String returns the line printed by --version and the version command.
func String() string {
	info := GetInfo()

	var details []string
	if info.Commit != "" {
		commit := shortCommit(info.Commit)
		if info.Modified {
			commit += "-dirty"
		}
		details = append(details, "commit: "+commit)
	}
	if info.Date != "" {
		details = append(details, "built: "+info.Date)
	}
	details = append(details, info.GoVersion, info.Platform)

	return fmt.Sprintf("palettegen version %s (%s)", info.Version, strings.Join(details, ", "))
}

// Short returns just the version, as cobra shows it.
func Short() string {
	return GetInfo().Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
