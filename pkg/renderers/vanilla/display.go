package vanilla

import (
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-listgen/pkg/model"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// DisplayValue formats a cell value into an HTML-safe fragment: booleans
// become status badges, nil renders as a muted placeholder, timestamps get a
// readable format, and Markup values are sanitized. Everything else is
// escaped text.
func DisplayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return `<i class="text-muted">None</i>`
	case bool:
		if v {
			return `<span class="label label-success"><i class="icon-ok"></i></span>`
		}
		return `<span class="label label-danger"><i class="icon-remove"></i></span>`
	case model.Markup:
		return sanitizer().Sanitize(string(v))
	case time.Time:
		return html.EscapeString(formatTime(v))
	case fmt.Stringer:
		return html.EscapeString(v.String())
	case string:
		return html.EscapeString(v)
	default:
		return html.EscapeString(fmt.Sprintf("%v", v))
	}
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("01/02/2006")
	}
	return t.Format("Mon Jan  2 15:04:05 2006")
}

func sanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		markupPolicy = policy
	})
	return markupPolicy
}
