// Package buildinfo reports which build of planegraph is running.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/planegraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/planegraph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/planegraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with `go install` carry no ldflags; for those, [Get] falls
// back to the module version and VCS stamp the Go toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Values set via ldflags. The defaults mark a local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes one build.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build information, preferring ldflags values over what
// the toolchain recorded in the binary.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return fill(info, bi)
}

// fill replaces default values in info with the ones recorded in bi.
func fill(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

// String returns the build information on three lines.
func String() string {
	info := Get()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", info.Version, info.Commit, info.Date)
}

// Template returns the version template for cobra.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
