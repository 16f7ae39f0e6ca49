// Package model defines the table-shaped data consumed by the page composer
// and renderers: headers, lazily sourced rows, and projections that map
// opaque records onto ordered cell sequences. Records stay owned by the data
// layer; nothing here mutates them. Cell values may be plain Go values
// (formatted by the renderer) or Markup fragments that renderers sanitize
// before embedding.
package model
