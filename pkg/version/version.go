package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/sjslang/sjsc/pkg/version.Version=...".
var (
	Version   string
	GitCommit string
)

const unknown = "unknown"

// Info describes the build of the running compiler.
type Info struct {
	Version   string
	GitCommit string
	GoVersion string
}

// Get prefers the values set at link time and falls back to the build
// information embedded by the go tool.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}
	if info.Version == "" {
		info.Version = unknown
	}
	if info.GitCommit == "" {
		info.GitCommit = unknown
	}
	return info
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if info.GitCommit != "" {
		return info
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.GitCommit = s.Value
		}
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.modified" && s.Value == "true" && info.GitCommit != "" {
			info.GitCommit += "-dirty"
		}
	}
	return info
}

func (i Info) String() string {
	return fmt.Sprintf("sjsc version: %s\n  git commit: %s\n  go version: %s\n", i.Version, i.GitCommit, i.GoVersion)
}

func String() string {
	return Get().String()
}
