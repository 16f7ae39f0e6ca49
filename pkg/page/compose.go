package page

import (
	"fmt"
	"net/url"
	"unicode"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/query"
	"github.com/goliatone/go-listgen/pkg/view"
)

// PopupParam is the query flag marking popup-mode requests. Its value is
// copied verbatim into every URL built for the page so popups keep linking
// to popups.
const PopupParam = "_popup"

// DefaultEditAction is the action name used to link row cells to the record's
// edit page.
const DefaultEditAction = "edit"

// Options carries the optional collaborators of a composition. Nil
// capabilities mean "absent": no sort links, no filter panel, no pagination.
type Options struct {
	// Ancestors is the request-level ancestor chain. It precedes the view's
	// own ancestors in the breadcrumb trail and scopes header action links.
	Ancestors []view.Ancestor
	Sort      query.Sorter
	Filter    query.Filterer
	Paginator query.Paginator
	// URLs resolves action and edit links. Nil degrades every link to plain
	// text.
	URLs view.URLBuilder
	// Query is the raw request query string, consulted for PopupParam.
	Query url.Values
	// EditAction overrides the action name used for first-cell links.
	EditAction string
}

// Compose resolves a view descriptor, a table projection, and the optional
// capabilities into one Page. It drains the table's row source exactly once,
// evaluates every permission exactly once, and never mutates its inputs.
func Compose(v view.View, table model.Table, opts Options) (Page, error) {
	editAction := opts.EditAction
	if editAction == "" {
		editAction = DefaultEditAction
	}
	params := linkParams(opts.Query)

	pg := Page{
		Title:       v.Kind,
		Breadcrumbs: breadcrumbs(v, opts.Ancestors),
		View:        v,
	}

	headerActions, err := resolveHeaderActions(v, opts, params)
	if err != nil {
		return Page{}, err
	}
	pg.HeaderActions = headerActions

	instanceActions := v.InstanceActions()
	pg.Head = headCells(table.Headers, opts.Sort)
	for _, a := range instanceActions {
		pg.ActionHeaders = append(pg.ActionHeaders, capitalize(a.Name))
	}

	rows, err := resolveRows(v, table, instanceActions, editAction, opts.URLs, params)
	if err != nil {
		return Page{}, err
	}
	pg.Rows = rows
	pg.RowCount = len(rows)
	pg.Empty = len(rows) == 0
	pg.EmptySpan = len(table.Headers) + len(instanceActions)

	if opts.Filter != nil {
		pg.HasFilter = true
		pg.Filter = opts.Filter.Render()
	}
	if opts.Paginator != nil {
		pg.HasPaginator = true
		pg.Pagination = opts.Paginator.Render()
		pg.CountNote = fmt.Sprintf("Showing %d of %d rows", pg.RowCount, opts.Paginator.TotalObjects())
	}

	return pg, nil
}

// breadcrumbs concatenates the request ancestors, the view's own ancestors,
// and the kind label as the non-clickable leaf.
func breadcrumbs(v view.View, ancestors []view.Ancestor) []Crumb {
	crumbs := make([]Crumb, 0, len(ancestors)+len(v.Ancestors)+1)
	for _, a := range ancestors {
		crumbs = append(crumbs, Crumb{Label: a.Label, URL: a.URL})
	}
	for _, a := range v.Ancestors {
		crumbs = append(crumbs, Crumb{Label: a.Label, URL: a.URL})
	}
	return append(crumbs, Crumb{Label: v.Kind})
}

func resolveHeaderActions(v view.View, opts Options, params url.Values) ([]ActionLink, error) {
	var links []ActionLink
	for _, a := range v.LinkedActions() {
		resolved, ok, err := view.ResolveHeader(a, v, opts.Ancestors, opts.URLs, params)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		links = append(links, actionLink(resolved, false))
	}
	return links, nil
}

func headCells(headers []model.Header, sort query.Sorter) []HeadCell {
	cells := make([]HeadCell, len(headers))
	for i, h := range headers {
		cell := HeadCell{Key: h.Key, Label: h.Label}
		if sort != nil && sort.IsSortable(h.Key) {
			cell.Sortable = true
			cell.SortURL = sort.URLFor(h.Key)
			cell.SortIcon = sort.IconClass(h.Key)
		}
		cells[i] = cell
	}
	return cells
}

func resolveRows(v view.View, table model.Table, instanceActions []view.Action, editAction string, urls view.URLBuilder, params url.Values) ([]RowView, error) {
	if table.Rows == nil {
		return nil, nil
	}

	var rows []RowView
	for {
		row, more := table.Rows.Next()
		if !more {
			break
		}
		if len(row.Cells) != len(table.Headers) {
			return nil, &ShapeMismatchError{
				Row:  len(rows),
				Want: len(table.Headers),
				Got:  len(row.Cells),
			}
		}

		rv := RowView{Instance: row.Instance, Cells: make([]Cell, len(row.Cells))}

		editURL, hasEdit := "", false
		if v.LinkFirst && urls != nil {
			editURL, hasEdit = urls.URLFor(v.Path, editAction, row.Instance, params)
		}
		for i, value := range row.Cells {
			cell := Cell{Value: value}
			if i == 0 && hasEdit {
				cell.URL = editURL
				cell.Linked = true
			}
			rv.Cells[i] = cell
		}

		for _, a := range instanceActions {
			resolved, ok, err := view.ResolveInstance(a, v, row.Instance, urls, params)
			if err != nil {
				return nil, err
			}
			link := ActionLink{Name: a.Name, Compact: true}
			if ok {
				link = actionLink(resolved, true)
			}
			link.Allowed = ok
			rv.Actions = append(rv.Actions, link)
		}

		rows = append(rows, rv)
	}
	return rows, nil
}

func actionLink(resolved view.ResolvedAction, compact bool) ActionLink {
	return ActionLink{
		Name:    resolved.Action.Name,
		Label:   capitalize(resolved.Action.Name),
		URL:     resolved.URL,
		HasURL:  resolved.HasURL,
		Icon:    resolved.Action.Icon,
		Class:   resolved.Action.Class,
		Compact: compact,
		Allowed: true,
	}
}

// linkParams extracts the query parameters that must ride along on every
// link built for the page.
func linkParams(request url.Values) url.Values {
	params := url.Values{}
	if request == nil {
		return params
	}
	if values, ok := request[PopupParam]; ok {
		params[PopupParam] = append([]string(nil), values...)
	}
	return params
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
