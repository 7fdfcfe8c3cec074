package web

import "embed"

// Assets contains the browser page templates and their static files.
//
//go:embed index.html.tmpl notfound.html.tmpl static
var Assets embed.FS
