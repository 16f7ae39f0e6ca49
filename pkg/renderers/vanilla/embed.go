package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so consumers can extend
// the stock markup or serve it as a starting point for their own.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
