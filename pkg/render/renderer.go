package render

import (
	"context"

	"github.com/goliatone/go-listgen/pkg/page"
)

// Renderer converts a composed Page into a byte representation (HTML, JSON,
// plain text). Render must treat the page as read-only and must honor
// context cancellation: a cancelled context returns an error, never partial
// output presented as complete.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, pg page.Page, options RenderOptions) ([]byte, error)
}
