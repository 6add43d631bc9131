package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Set with -ldflags "-X cola.io/learnmcp/pkg/version.version=...". When
	// left unset, Get falls back to the module version recorded by the Go
	// toolchain.
	module    = "learnmcp"
	version   = ""
	gitCommit = ""
	buildDate = "1970-01-01T00:00:00Z" // ISO8601, output of $(date -u +'%Y-%m-%dT%H:%M:%SZ')
)

// Info contains versioning information.
type Info struct {
	Module    string `json:"module"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
}

// Pretty returns a pretty output representation of Info
func (info Info) Pretty() string {
	return fmt.Sprintf(
		"Module: %s\nVersion: %s\nGitCommit: %s\nBuildDate: %s\nGoVersion: %s\nPlatform: %s",
		info.Module,
		info.Version,
		info.GitCommit,
		info.BuildDate,
		info.GoVersion,
		info.Platform,
	)
}

// String returns the marshalled json string of Info
func (info Info) String() string {
	str, _ := json.Marshal(info)
	return string(str)
}

// Get returns the version of the running binary.
func Get() Info {
	info := Info{
		Module:    module,
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		}
	}
	if info.Version == "" || info.Version == "(devel)" {
		info.Version = "v0.0.0-dev"
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	return info
}
