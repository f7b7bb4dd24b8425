// Package web holds the embedded assets of the launchpad form.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
