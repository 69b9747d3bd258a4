package content

import "embed"

// defaultsFS holds the content shipped with the binary.
//
//go:embed defaults
var defaultsFS embed.FS
