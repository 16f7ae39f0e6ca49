package vanilla

import (
	"sort"
	"strings"

	"github.com/goliatone/go-listgen/pkg/page"
	"github.com/goliatone/go-listgen/pkg/render"
)

// defaultButtonClass matches unthemed pages; themes override it through the
// button.class token.
const defaultButtonClass = "btn-default"

// buildContext flattens the page into the map the template engine consumes.
// All cell values pass through DisplayValue here so the templates only ever
// interpolate safe fragments.
func buildContext(pg page.Page, options render.RenderOptions) map[string]any {
	buttonClass := options.Theme.Token("button.class", defaultButtonClass)

	crumbs := make([]map[string]any, len(pg.Breadcrumbs))
	for i, crumb := range pg.Breadcrumbs {
		crumbs[i] = map[string]any{"label": crumb.Label, "url": crumb.URL}
	}

	headerActions := make([]map[string]any, len(pg.HeaderActions))
	for i, action := range pg.HeaderActions {
		headerActions[i] = actionContext(action, buttonClass)
	}

	head := make([]map[string]any, len(pg.Head))
	for i, cell := range pg.Head {
		head[i] = map[string]any{
			"key":       cell.Key,
			"label":     cell.Label,
			"sortable":  cell.Sortable,
			"sort_url":  cell.SortURL,
			"sort_icon": cell.SortIcon,
		}
	}

	rows := make([]map[string]any, len(pg.Rows))
	for i, row := range pg.Rows {
		cells := make([]map[string]any, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = map[string]any{
				"html":   DisplayValue(cell.Value),
				"linked": cell.Linked,
				"url":    cell.URL,
			}
		}
		actions := make([]map[string]any, len(row.Actions))
		for j, action := range row.Actions {
			actions[j] = actionContext(action, buttonClass)
		}
		rows[i] = map[string]any{"cells": cells, "actions": actions}
	}

	ctx := map[string]any{
		"page": map[string]any{
			"title":          pg.Title,
			"breadcrumbs":    crumbs,
			"count_note":     pg.CountNote,
			"header_actions": headerActions,
			"head":           head,
			"action_headers": pg.ActionHeaders,
			"rows":           rows,
			"empty":          pg.Empty,
			"empty_span":     pg.EmptySpan,
			"has_filter":     pg.HasFilter,
			"filter":         string(pg.Filter),
			"has_paginator":  pg.HasPaginator,
			"pagination":     string(pg.Pagination),
		},
		"popup": options.Popup,
	}

	if options.Theme != nil {
		ctx["theme_css"] = cssVarsText(options.Theme.CSSVars)
		if options.Theme.AssetURL != nil {
			ctx["theme_stylesheet"] = options.Theme.AssetURL("vanilla.stylesheet")
		}
	}
	return ctx
}

func actionContext(action page.ActionLink, buttonClass string) map[string]any {
	class := action.Class
	if class == "" {
		class = buttonClass
	}
	return map[string]any{
		"name":    action.Name,
		"label":   action.Label,
		"url":     action.URL,
		"has_url": action.HasURL,
		"icon":    action.Icon,
		"class":   class,
		"allowed": action.Allowed,
	}
}

// cssVarsText renders CSS custom properties in deterministic order so themed
// output stays byte-stable across renders.
func cssVarsText(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
