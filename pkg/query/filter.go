package query

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/goliatone/go-listgen/pkg/model"
)

// Choice is one selectable filter value.
type Choice struct {
	Value string
	Label string
}

// ChoicesFilter narrows the listing to records matching one of a fixed set
// of values carried in its query parameter.
type ChoicesFilter struct {
	FieldName string
	Title     string
	Choices   []Choice
}

// NewChoicesFilter builds a filter over the given field. An empty title is
// derived from the field name.
func NewChoicesFilter(field string, choices ...Choice) ChoicesFilter {
	return ChoicesFilter{
		FieldName: field,
		Title:     model.Labelize(field),
		Choices:   choices,
	}
}

// NewBoolFilter builds a true/false filter over the given field.
func NewBoolFilter(field string) ChoicesFilter {
	return NewChoicesFilter(field,
		Choice{Value: "t", Label: "True"},
		Choice{Value: "f", Label: "False"},
	)
}

// render writes the filter's choice list. The active choice is marked; every
// choice links to the listing with this filter's parameter swapped and an
// "All" entry clears it.
func (f ChoicesFilter) render(b *strings.Builder, baseURL string, query url.Values) {
	active := query.Get(f.FieldName)

	fmt.Fprintf(b, `<h4>%s</h4><ul class="list-unstyled">`, html.EscapeString(f.Title))
	f.renderChoice(b, baseURL, query, Choice{Value: "", Label: "All"}, active == "")
	for _, choice := range f.Choices {
		f.renderChoice(b, baseURL, query, choice, choice.Value == active)
	}
	b.WriteString(`</ul>`)
}

func (f ChoicesFilter) renderChoice(b *strings.Builder, baseURL string, query url.Values, choice Choice, active bool) {
	class := ""
	if active {
		class = "active"
	}
	fmt.Fprintf(b, `<li class="%s"><a href="%s">%s</a></li>`,
		class,
		html.EscapeString(rebuildURL(baseURL, query, f.FieldName, choice.Value)),
		html.EscapeString(choice.Label))
}

// FilterSet combines filters into the side-panel Filterer capability and
// exposes the active values for the data layer to apply.
type FilterSet struct {
	BaseURL string
	Query   url.Values
	Filters []ChoicesFilter
}

// Render implements Filterer.
func (fs *FilterSet) Render() model.Markup {
	var b strings.Builder
	b.WriteString(`<div class="list-filters">`)
	for _, f := range fs.Filters {
		f.render(&b, fs.BaseURL, fs.Query)
	}
	b.WriteString(`</div>`)
	return model.Markup(b.String())
}

// Value returns the active value for a field, "" when the filter is clear.
func (fs *FilterSet) Value(field string) string {
	return fs.Query.Get(field)
}

// Bool returns the active boolean filter state. ok is false when the filter
// is clear or carries an unknown value.
func (fs *FilterSet) Bool(field string) (value, ok bool) {
	switch fs.Query.Get(field) {
	case "t":
		return true, true
	case "f":
		return false, true
	}
	return false, false
}
