package static

import "embed"

// FS exposes the landing page stylesheet for HTTP serving and static export.
//
//go:embed css/*.css
var FS embed.FS
