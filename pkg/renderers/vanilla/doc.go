// Package vanilla renders the composed list page as a standalone HTML
// document. The markup lives in embedded pongo2 templates: a base shell with
// named regions (breadcrumbs, page header, header buttons, content) and a
// list template that fills them, so embedders can swap either layer without
// touching the composition pipeline.
package vanilla
