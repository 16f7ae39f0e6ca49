// Package listgen turns view descriptors and record collections into rendered
// HTML list pages. The top-level Generator wires the composition pipeline
// (page.Compose) to a renderer registry, applying sensible defaults (vanilla
// renderer, embedded templates) while remaining open to dependency injection.
package listgen

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/page"
	"github.com/goliatone/go-listgen/pkg/render"
	"github.com/goliatone/go-listgen/pkg/renderers/vanilla"
	"github.com/goliatone/go-listgen/pkg/view"
)

const defaultRendererName = "vanilla"

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithURLBuilder sets the builder used to resolve action and edit links for
// requests that do not carry their own.
func WithURLBuilder(urls view.URLBuilder) Option {
	return func(g *Generator) {
		g.urls = urls
	}
}

// WithThemeSelector passes a go-theme selector through to the generator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		g.themes = selector
	}
}

// Generator coordinates the pipeline from view descriptor to rendered output.
type Generator struct {
	registry        *render.Registry
	defaultRenderer string
	urls            view.URLBuilder
	themes          theme.ThemeSelector
	initialiseErr   error
}

// New constructs a Generator applying any provided options. A missing registry
// is initialised with the built-in vanilla renderer so callers can start with
// a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// GenerateHTML builds a generator, composes the page, and renders it with the
// named renderer. It is the simplest entry point for callers that just want
// HTML output.
func GenerateHTML(ctx context.Context, req Request, options ...Option) ([]byte, error) {
	return New(options...).Generate(ctx, req)
}

// Request describes the inputs required to render one list page.
type Request struct {
	// View describes the kind being listed, its ancestors, and its actions.
	View view.View

	// Table supplies headers and the row source. The source is drained exactly
	// once during composition.
	Table model.Table

	// Ancestors is the request-level ancestor chain prepended to the view's
	// own ancestors.
	Ancestors []view.Ancestor

	// Sort, Filter, and Paginator are optional capabilities. They may be the
	// typed interfaces from pkg/query or any value satisfying them; nil means
	// the capability is absent. Values that satisfy neither fail with
	// page.MissingCapabilityError.
	Sort      any
	Filter    any
	Paginator any

	// URLs overrides the generator's URL builder for this request.
	URLs view.URLBuilder

	// Query is the raw request query string, consulted for popup mode and
	// carried into every generated link.
	Query url.Values

	// Renderer names the renderer to use. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is configured.
	ThemeName    string
	ThemeVariant string
}

// Generate composes the page and renders it with the requested renderer,
// returning the rendered bytes (HTML for the default vanilla renderer).
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("listgen: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if req.View.Kind == "" {
		return nil, errors.New("listgen: view kind is required")
	}

	sorter, err := page.AsSorter(req.Sort)
	if err != nil {
		return nil, err
	}
	filter, err := page.AsFilterer(req.Filter)
	if err != nil {
		return nil, err
	}
	paginator, err := page.AsPaginator(req.Paginator)
	if err != nil {
		return nil, err
	}

	urls := req.URLs
	if urls == nil {
		urls = g.urls
	}

	pg, err := page.Compose(req.View, req.Table, page.Options{
		Ancestors: req.Ancestors,
		Sort:      sorter,
		Filter:    filter,
		Paginator: paginator,
		URLs:      urls,
		Query:     req.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("listgen: compose page: %w", err)
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := render.RenderOptions{
		Popup: req.Query.Get(page.PopupParam) != "",
	}
	if options.Theme, err = g.resolveTheme(req); err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, pg, options)
	if err != nil {
		return nil, fmt.Errorf("listgen: render output: %w", err)
	}
	return output, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	if g.registry == nil {
		return nil, errors.New("listgen: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultRenderer
	}

	if target != "" {
		renderer, err := g.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("listgen: renderer %q: %w", name, err)
		}
	}

	names := g.registry.List()
	if len(names) == 0 {
		return nil, errors.New("listgen: no renderers registered")
	}

	renderer, err := g.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("listgen: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (g *Generator) resolveTheme(req Request) (*render.ThemeConfig, error) {
	if g.themes == nil || req.ThemeName == "" {
		return nil, nil
	}
	selection, err := g.themes.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("listgen: select theme %q: %w", req.ThemeName, err)
	}
	return render.ThemeFromSelection(selection), nil
}

func (g *Generator) applyDefaults() {
	if g.registry == nil {
		g.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("listgen: default renderer: %w", err)
		} else {
			g.registry.MustRegister(renderer)
		}
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}
}
