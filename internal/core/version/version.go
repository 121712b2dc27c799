// Package version exposes build metadata stamped at link time
package version

// set via -ldflags, e.g.
//
//	go build -ldflags "\
//	  -X greenpath/internal/core/version.version=v0.1.0 \
//	  -X greenpath/internal/core/version.commit=$(git rev-parse --short HEAD) \
//	  -X greenpath/internal/core/version.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the static identity of this binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build metadata for the running service
func Info() BuildInfo {
	return BuildInfo{
		Service: "greenpath-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
