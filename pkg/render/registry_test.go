package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listgen/pkg/page"
	"github.com/goliatone/go-listgen/pkg/render"
	theme "github.com/goliatone/go-theme"
)

type fakeRenderer struct{ name string }

func (f fakeRenderer) Name() string        { return f.name }
func (f fakeRenderer) ContentType() string { return "text/plain" }
func (f fakeRenderer) Render(context.Context, page.Page, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(fakeRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(fakeRenderer{name: "html"}); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
	if err := registry.Register(fakeRenderer{}); err == nil {
		t.Fatalf("unnamed renderer should fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("nil renderer should fail")
	}

	registry.MustRegister(fakeRenderer{name: "text"})

	if !registry.Has("html") {
		t.Fatalf("registered renderer not found")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("unknown renderer should error")
	}
	if diff := cmp.Diff([]string{"html", "text"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestThemeFromSelection_MergesVariant(t *testing.T) {
	manifest := &theme.Manifest{
		Name: "acme",
		Tokens: map[string]string{
			"brand":        "#123456",
			"button.class": "btn-default",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{Files: map[string]string{"vendor": "vendor.dark.js"}},
			},
		},
	}

	cfg := render.ThemeFromSelection(&theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	})
	if cfg == nil {
		t.Fatalf("expected theme config")
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not merged: %q", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived: %q", cfg.CSSVars["--brand"])
	}
	if got := cfg.AssetURL("vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("asset url = %q", got)
	}
	if got := cfg.AssetURL("unknown"); got != "" {
		t.Fatalf("unknown asset should resolve empty, got %q", got)
	}
	if got := cfg.Token("button.class", "btn"); got != "btn-default" {
		t.Fatalf("token lookup = %q", got)
	}

	var missing *render.ThemeConfig
	if got := missing.Token("button.class", "btn"); got != "btn" {
		t.Fatalf("nil config fallback = %q", got)
	}
}
