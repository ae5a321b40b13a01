// Package assets embeds the game's data files. It has no ebiten dependency so
// loaders can be tested headless.
package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// RunMapPath is the run map every new run starts on.
const RunMapPath = "maps/run.tmx"

// Maps returns the embedded map files. Paths are relative to this package,
// e.g. RunMapPath.
func Maps() fs.FS {
	return mapFS
}
