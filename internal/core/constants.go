package core

import "os"

// FileMode aliases os.FileMode so callers do not need to import os for permissions.
type FileMode = os.FileMode

// PermOwnerRW is used for configuration files (owner read/write only).
const PermOwnerRW FileMode = 0o600

const (
	// DefaultManifestName is the per-directory taglib manifest file.
	DefaultManifestName = "marko.json"

	// DefaultComponentsDir is the conventional directory scanned for implicit tags.
	DefaultComponentsDir = "components"

	// PackageManifestName marks a package boundary.
	PackageManifestName = "package.json"

	// NodeModulesDir holds installed dependencies.
	NodeModulesDir = "node_modules"
)
