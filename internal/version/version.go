// Package version reports the tagfind build version.
package version

import (
	"runtime/debug"
	"strings"
)

// version is set at build time with -ldflags "-X github.com/indaco/tagfind/internal/version.version=1.2.3".
var version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version without a leading "v": the linker-provided
// value, then the module version from build info, then "dev".
func GetVersion() string {
	if version != "" {
		return strings.TrimPrefix(version, "v")
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return "dev"
}
