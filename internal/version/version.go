// Package version carries the build-time version string, overridable via
// -ldflags "-X github.com/fkopp/polycube/internal/version.version=...".
package version

var version = "dev"

// Version returns the module's build version.
func Version() string {
	return version
}
