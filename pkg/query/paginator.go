package query

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-listgen/pkg/model"
)

// PageParam is the query parameter carrying the current page number.
const PageParam = "page"

// Pager slices a record set into pages and renders the navigation controls.
// Total is the absolute object count across all pages.
type Pager struct {
	Page    int
	PerPage int
	Total   int

	baseURL string
	query   url.Values
}

// NewPager reads the current page from query. perPage values below 1 fall
// back to 20; page numbers outside [1, Pages] clamp to the nearest bound.
func NewPager(baseURL string, query url.Values, perPage, total int) *Pager {
	if perPage < 1 {
		perPage = 20
	}
	page := 1
	if raw := query.Get(PageParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 1 {
			page = n
		}
	}

	p := &Pager{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		baseURL: baseURL,
		query:   query,
	}
	if last := p.Pages(); p.Page > last && last > 0 {
		p.Page = last
	}
	return p
}

// TotalObjects implements the Paginator capability.
func (p *Pager) TotalObjects() int { return p.Total }

// Pages returns the page count, at least 1 so an empty set still has a
// current page.
func (p *Pager) Pages() int {
	if p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Offset returns the index of the first object on the current page.
func (p *Pager) Offset() int { return (p.Page - 1) * p.PerPage }

// Limit returns the slice size for the current page.
func (p *Pager) Limit() int { return p.PerPage }

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p *Pager) HasNext() bool { return p.Page < p.Pages() }

// URLForPage builds the link to a page, preserving the other query
// parameters.
func (p *Pager) URLForPage(number int) string {
	return rebuildURL(p.baseURL, p.query, PageParam, strconv.Itoa(number))
}

// PageNumbers returns the visible page window: a couple of pages around each
// edge, a run around the current page, and 0 marking each elided gap.
func (p *Pager) PageNumbers() []int {
	const (
		leftEdge     = 2
		leftCurrent  = 2
		rightCurrent = 5
		rightEdge    = 2
	)

	var out []int
	last := 0
	pages := p.Pages()
	for num := 1; num <= pages; num++ {
		nearCurrent := num > p.Page-leftCurrent-1 && num < p.Page+rightCurrent
		if num <= leftEdge || nearCurrent || num > pages-rightEdge {
			if last+1 != num {
				out = append(out, 0)
			}
			out = append(out, num)
			last = num
		}
	}
	return out
}

// Render produces the pagination control markup.
func (p *Pager) Render() model.Markup {
	var b strings.Builder
	b.WriteString(`<nav class="list-pagination"><ul class="pagination">`)

	if p.HasPrev() {
		fmt.Fprintf(&b, `<li><a href="%s" rel="prev">&laquo;</a></li>`,
			html.EscapeString(p.URLForPage(p.Page-1)))
	} else {
		b.WriteString(`<li class="disabled"><span>&laquo;</span></li>`)
	}

	for _, num := range p.PageNumbers() {
		switch {
		case num == 0:
			b.WriteString(`<li class="disabled"><span>&hellip;</span></li>`)
		case num == p.Page:
			fmt.Fprintf(&b, `<li class="active"><span>%d</span></li>`, num)
		default:
			fmt.Fprintf(&b, `<li><a href="%s">%d</a></li>`,
				html.EscapeString(p.URLForPage(num)), num)
		}
	}

	if p.HasNext() {
		fmt.Fprintf(&b, `<li><a href="%s" rel="next">&raquo;</a></li>`,
			html.EscapeString(p.URLForPage(p.Page+1)))
	} else {
		b.WriteString(`<li class="disabled"><span>&raquo;</span></li>`)
	}

	b.WriteString(`</ul></nav>`)
	return model.Markup(b.String())
}
