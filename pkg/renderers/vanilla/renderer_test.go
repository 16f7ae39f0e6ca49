package vanilla_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/page"
	"github.com/goliatone/go-listgen/pkg/render"
	"github.com/goliatone/go-listgen/pkg/renderers/vanilla"
)

func samplePage() page.Page {
	return page.Page{
		Title: "Widget",
		Breadcrumbs: []page.Crumb{
			{Label: "Stores", URL: "/stores"},
			{Label: "Widget"},
		},
		CountNote: "Showing 1 of 42 rows",
		HeaderActions: []page.ActionLink{
			{Name: "create", Label: "Create", URL: "/widgets/create", HasURL: true, Allowed: true},
		},
		Head: []page.HeadCell{
			{Key: "name", Label: "Name", Sortable: true, SortURL: "/widgets?sort=name", SortIcon: "sort-icon sort-none"},
		},
		ActionHeaders: []string{"Delete"},
		Rows: []page.RowView{
			{
				Cells: []page.Cell{{Value: "Alice", URL: "/widgets/1/edit", Linked: true}},
				Actions: []page.ActionLink{
					{Name: "delete", Label: "Delete", URL: "/widgets/1/delete", HasURL: true, Icon: "icon-trash", Compact: true, Allowed: true},
				},
			},
		},
		RowCount:     1,
		EmptySpan:    2,
		HasPaginator: true,
		Pagination:   `<nav class="list-pagination"></nav>`,
	}
}

func renderPage(t *testing.T, pg page.Page, options render.RenderOptions) string {
	t.Helper()

	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), pg, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_ListPage(t *testing.T) {
	html := renderPage(t, samplePage(), render.RenderOptions{})

	for _, fragment := range []string{
		"<title>Widget</title>",
		`<li><a href="/stores">Stores</a></li>`,
		`<li class="active">Widget</li>`,
		"<small>Showing 1 of 42 rows</small>",
		`href="/widgets/create"`,
		`<a href="/widgets?sort=name" class="sort-toggle">`,
		`<th class="action-col">Delete</th>`,
		`<a href="/widgets/1/edit">Alice</a>`,
		`title="Delete"`,
		`<i class="icon-trash"></i>`,
		`<nav class="list-pagination"></nav>`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("output missing %q:\n%s", fragment, html)
		}
	}

	if strings.Contains(html, "listgen-filters") {
		t.Fatalf("filter panel rendered without a filter:\n%s", html)
	}
}

func TestRenderer_EmptyState(t *testing.T) {
	pg := page.Page{
		Title: "Widget",
		Head: []page.HeadCell{
			{Key: "name", Label: "Name"},
			{Key: "qty", Label: "Qty"},
		},
		Empty:     true,
		EmptySpan: 2,
	}

	html := renderPage(t, pg, render.RenderOptions{})
	if !strings.Contains(html, `<td colspan="2">Nothing to display.</td>`) {
		t.Fatalf("empty state row missing:\n%s", html)
	}
}

func TestRenderer_FilterTogglesLayout(t *testing.T) {
	pg := samplePage()
	pg.HasFilter = true
	pg.Filter = `<div class="list-filters"><h4>State</h4></div>`

	html := renderPage(t, pg, render.RenderOptions{})
	if !strings.Contains(html, `class="listgen-list with-filters"`) {
		t.Fatalf("filter layout class missing:\n%s", html)
	}
	if !strings.Contains(html, "<h4>State</h4>") {
		t.Fatalf("filter markup missing:\n%s", html)
	}
}

func TestRenderer_PopupDropsChrome(t *testing.T) {
	html := renderPage(t, samplePage(), render.RenderOptions{Popup: true})
	if strings.Contains(html, "breadcrumb") {
		t.Fatalf("popup page should not render breadcrumbs:\n%s", html)
	}
	if !strings.Contains(html, "listgen-popup") {
		t.Fatalf("popup marker class missing:\n%s", html)
	}
}

func TestRenderer_ThemeTokens(t *testing.T) {
	pg := samplePage()
	options := render.RenderOptions{
		Theme: &render.ThemeConfig{
			Theme:   "acme",
			Tokens:  map[string]string{"button.class": "btn-acme"},
			CSSVars: map[string]string{"--brand": "#123456"},
			AssetURL: func(key string) string {
				if key == "vanilla.stylesheet" {
					return "/assets/acme/list.css"
				}
				return ""
			},
		},
	}

	html := renderPage(t, pg, options)
	if !strings.Contains(html, "btn-acme") {
		t.Fatalf("themed button class missing:\n%s", html)
	}
	if !strings.Contains(html, "--brand: #123456;") {
		t.Fatalf("css vars missing:\n%s", html)
	}
	if !strings.Contains(html, `href="/assets/acme/list.css"`) {
		t.Fatalf("stylesheet link missing:\n%s", html)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, samplePage(), render.RenderOptions{}); err == nil {
		t.Fatalf("cancelled context must not produce output")
	}
}

func TestDisplayValue(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, `<i class="text-muted">None</i>`},
		{"true", true, `<span class="label label-success"><i class="icon-ok"></i></span>`},
		{"false", false, `<span class="label label-danger"><i class="icon-remove"></i></span>`},
		{"string escapes", `<script>`, "&lt;script&gt;"},
		{"number", 42, "42"},
		{"date", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "08/30/2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := vanilla.DisplayValue(tc.value); got != tc.want {
				t.Fatalf("DisplayValue(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestDisplayValue_SanitizesMarkup(t *testing.T) {
	got := vanilla.DisplayValue(model.Markup(`<b>ok</b><script>alert(1)</script>`))
	if !strings.Contains(got, "<b>ok</b>") {
		t.Fatalf("benign markup stripped: %q", got)
	}
	if strings.Contains(got, "script") {
		t.Fatalf("script survived sanitization: %q", got)
	}
}
