package app

// version is set at build time via -ldflags "-X .../internal/app.version=...".
var version = "dev"

// BuildVersion returns the version stamped into the binary.
func BuildVersion() string {
	return version
}
