package cmd

import "io/fs"

// WebFS holds the embedded dashboard assets, set by main before Execute.
// nil means dev mode (proxy to the Vite dev server).
var WebFS fs.FS
