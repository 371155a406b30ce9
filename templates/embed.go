// Package templates embeds the HTML page set so the binary (and the
// tests) never depend on the working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
