package template

import "io"

// TemplateRenderer is the seam HTML renderers depend on instead of a
// concrete template engine. The default implementation lives in the
// gotemplate subpackage; tests and embedders can substitute their own.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
