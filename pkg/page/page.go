package page

import (
	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/view"
)

// Crumb is one breadcrumb entry. The leaf carries no URL.
type Crumb struct {
	Label string
	URL   string
}

// ActionLink is a permission-cleared action ready for rendering. Compact
// links (row actions) render icon-only with the label demoted to a tooltip.
type ActionLink struct {
	Name    string
	Label   string
	URL     string
	HasURL  bool
	Icon    string
	Class   string
	Compact bool
	// Allowed is false for row-action slots whose permission check failed;
	// the slot still renders (as an empty cell) so columns stay aligned.
	Allowed bool
}

// HeadCell is one table header. SortURL and SortIcon are only populated when
// Sortable is true.
type HeadCell struct {
	Key      string
	Label    string
	Sortable bool
	SortURL  string
	SortIcon string
}

// Cell is one body cell: the projected value plus the edit link the first
// cell of a row may carry.
type Cell struct {
	Value  any
	URL    string
	Linked bool
}

// RowView is one resolved body row.
type RowView struct {
	Instance any
	Cells    []Cell
	Actions  []ActionLink
}

// Page is the fully composed list page. It is a plain value: renderers read
// it, nothing mutates it afterwards.
type Page struct {
	Title         string
	Breadcrumbs   []Crumb
	CountNote     string
	HeaderActions []ActionLink
	Head          []HeadCell
	ActionHeaders []string
	Rows          []RowView
	RowCount      int
	Empty         bool
	EmptySpan     int
	HasFilter     bool
	Filter        model.Markup
	HasPaginator  bool
	Pagination    model.Markup
	View          view.View
}
