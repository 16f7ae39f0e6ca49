package query

import "github.com/goliatone/go-listgen/pkg/model"

// Sorter is the sortable-column capability. URLFor and IconClass may only be
// called for keys IsSortable reports true for.
type Sorter interface {
	IsSortable(key string) bool
	URLFor(key string) string
	IconClass(key string) string
}

// Filterer is the filter-panel capability. Presence alone shifts the page
// layout; Render produces the panel markup.
type Filterer interface {
	Render() model.Markup
}

// Paginator is the pagination capability. Presence alone toggles navigation
// controls and the header count note.
type Paginator interface {
	TotalObjects() int
	Render() model.Markup
}
