// Package template declares the template-engine contract shared by markup
// renderers. Keeping the engine behind an interface lets renderers embed
// their template bundles while callers swap in a differently configured
// engine (disk templates during development, custom filters, shared
// globals).
package template
