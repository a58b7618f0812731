package version

import (
	"runtime/debug"
)

var (
	// These will be set via -ldflags during build
	GitCommit string
	BuildTime string
)

// Info describes the build of the running binary.
type Info struct {
	GitCommit string           `json:"gitCommit,omitempty"`
	BuildTime string           `json:"buildTime,omitempty"`
	BuildInfo *debug.BuildInfo `json:"buildInfo,omitempty"`
}

// Get returns the version information, preferring ldflags values and
// falling back to the vcs settings stamped into the build info.
func Get() Info {
	ret := Info{
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ret
	}
	ret.BuildInfo = buildInfo
	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.revision" && ret.GitCommit == "" {
			ret.GitCommit = setting.Value
		}
		if setting.Key == "vcs.time" && ret.BuildTime == "" {
			ret.BuildTime = setting.Value
		}
	}
	return ret
}
