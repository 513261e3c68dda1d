package buildinfo

// Set via ldflags at release build time, e.g.
// -ldflags "-X .../internal/buildinfo.Version=v0.3.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
