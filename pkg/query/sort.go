package query

import (
	"net/url"
	"strings"
)

// SortParam is the query parameter carrying the sort state: a column key,
// prefixed with "-" for descending order.
const SortParam = "sort"

// Sort tracks which column the listing is ordered by and produces toggle
// links that flip direction on repeat clicks while preserving the rest of
// the query string.
type Sort struct {
	Key        string
	Descending bool

	baseURL  string
	query    url.Values
	sortable map[string]struct{}
}

// NewSort reads the current sort state from query and restricts sorting to
// the given keys. baseURL is the listing path toggle links point back at.
func NewSort(baseURL string, query url.Values, keys ...string) *Sort {
	s := &Sort{
		baseURL:  baseURL,
		query:    query,
		sortable: make(map[string]struct{}, len(keys)),
	}
	for _, key := range keys {
		s.sortable[key] = struct{}{}
	}

	raw := query.Get(SortParam)
	if strings.HasPrefix(raw, "-") {
		s.Descending = true
		raw = raw[1:]
	}
	if _, ok := s.sortable[raw]; ok {
		s.Key = raw
	} else {
		s.Descending = false
	}
	return s
}

// IsSortable reports whether toggle links may be built for the key.
func (s *Sort) IsSortable(key string) bool {
	_, ok := s.sortable[key]
	return ok
}

// URLFor returns the toggle link for a sortable column: first click sorts
// ascending, a second click on the active column flips to descending.
func (s *Sort) URLFor(key string) string {
	value := key
	if s.Key == key && !s.Descending {
		value = "-" + key
	}
	return rebuildURL(s.baseURL, s.query, SortParam, value)
}

// IconClass names the indicator for the column's current sort state.
func (s *Sort) IconClass(key string) string {
	if s.Key != key {
		return "sort-icon sort-none"
	}
	if s.Descending {
		return "sort-icon sort-desc"
	}
	return "sort-icon sort-asc"
}

// Order returns the state in query-parameter form ("name", "-name", or "")
// so data layers can apply the matching ordering.
func (s *Sort) Order() string {
	if s.Key == "" {
		return ""
	}
	if s.Descending {
		return "-" + s.Key
	}
	return s.Key
}
