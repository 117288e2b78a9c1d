package ffibench

import "runtime/debug"

const fallbackVersion = "v0.0.0-in-progress"

// Version is populated at build time via ldflags.
var Version = fallbackVersion

// WrapperVersion returns the version set via ldflags, then the module
// version recorded in the build info, then the in-progress placeholder.
func WrapperVersion() string {
	if Version != fallbackVersion && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return fallbackVersion
}
