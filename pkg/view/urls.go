package view

import (
	"fmt"
	"net/url"
	"strings"
)

// PathBuilder is a convention-based URLBuilder for callers that do not bring
// their own router: URLs take the shape
// {prefix}/{path}/{target}/{action}?{params} with lowercased path segments
// and the target segment omitted for view-scoped links. ID extracts the URL
// segment for a target; when nil a best-effort lookup is used (map "id"
// entry, exported ID field, fmt.Stringer).
type PathBuilder struct {
	Prefix string
	ID     func(target any) (string, bool)
}

// URLFor implements URLBuilder. It never fails for view-scoped links; for
// targeted links it reports ok=false when no identifier can be derived.
func (b PathBuilder) URLFor(viewPath, action string, target any, params url.Values) (string, bool) {
	segments := []string{strings.Trim(b.Prefix, "/")}
	for _, part := range strings.Split(viewPath, "/") {
		if part != "" {
			segments = append(segments, strings.ToLower(part))
		}
	}

	if target != nil {
		id, ok := b.identify(target)
		if !ok {
			return "", false
		}
		segments = append(segments, id)
	}
	if action != "" && action != "list" {
		segments = append(segments, action)
	}

	var out strings.Builder
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		out.WriteString("/")
		out.WriteString(segment)
	}
	if out.Len() == 0 {
		out.WriteString("/")
	}
	if len(params) > 0 {
		out.WriteString("?")
		out.WriteString(params.Encode())
	}
	return out.String(), true
}

func (b PathBuilder) identify(target any) (string, bool) {
	if b.ID != nil {
		return b.ID(target)
	}

	switch v := target.(type) {
	case map[string]any:
		if id, ok := v["id"]; ok && id != nil {
			return fmt.Sprintf("%v", id), true
		}
		return "", false
	case fmt.Stringer:
		return v.String(), true
	case string:
		return v, v != ""
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprintf("%v", v), true
	}

	if id, ok := structID(target); ok {
		return id, true
	}
	return "", false
}
