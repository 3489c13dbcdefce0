package oasbind

import "fmt"

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string for HTTP transports issuing the
// requests built from this library's request models. The library performs no
// I/O itself; this is a convenience for the downstream caller that does.
func UserAgent() string {
	return fmt.Sprintf("oasbind/%s", version)
}
