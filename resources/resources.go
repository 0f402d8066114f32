// Package resources embeds the layout tables shipped with quacken.
// An external resource directory given on the command line overrides these.
package resources

import "embed"

//go:embed *.properties
var FS embed.FS
