// Package version reports the build of the running binary
package version

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information; values are stamped with
// -ldflags "-X 'taller/internal/core/version.version=v0.1.0' -X 'taller/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: "taller",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
