// Package metadata exposes the service's build-time identity.
package metadata

import "runtime/debug"

const (
	// service identity used in API responses
	Name = "simple_api"

	// used when the binary carries no build info (e.g. go run)
	fallbackVersion = "0.1.1"
)

// resolved once at startup
var version = resolveVersion()

// returns the service name, always non-empty
func ServiceName() string {
	return Name
}

// returns the service version, always non-empty
func Version() string {
	return version
}

func resolveVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return fallbackVersion
	}

	return info.Main.Version
}
