// Package version reports build metadata for the ponder binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags, e.g.
// -X go.jacobcolvin.com/ponder/version.Version=v1.2.0.
var (
	Version   string
	BuildDate string
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Revision  string `json:"revision"  yaml:"revision"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get collects build metadata. Version falls back to the main module
// version recorded by the Go toolchain, then to "devel".
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  "unknown",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		if info.Version == "" {
			info.Version = "devel"
		}

		return info
	}

	if info.Version == "" && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		info.Version = buildInfo.Main.Version
	}

	if info.Version == "" {
		info.Version = "devel"
	}

	modified := false

	for _, s := range buildInfo.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		info.Revision += "-dirty"
	}

	return info
}

// String formats the info on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (revision %s, %s, %s)", i.Version, i.Revision, i.GoVersion, i.Platform)
}
