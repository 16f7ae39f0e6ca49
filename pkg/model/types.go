package model

// Header names a single table column. Key identifies the column for sorting
// and projection lookups, Label is the human-facing text rendered in the
// table head.
type Header struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Row pairs a source record with its projected cell values. Cells must stay
// aligned index-for-index with the table headers; the composer enforces this.
type Row struct {
	Instance any
	Cells    []any
}

// RowSource yields successive table rows. Sources are finite and single pass:
// once Next reports false the source is drained, and rendering the same data
// again requires a fresh Table.
type RowSource interface {
	Next() (Row, bool)
}

// Table is the projection handed to the composer: the ordered headers plus a
// lazily evaluated row source.
type Table struct {
	Headers []Header
	Rows    RowSource
}

// Markup flags a cell value as pre-rendered HTML. Renderers sanitize Markup
// values rather than escaping them, so untrusted fragments never reach the
// page verbatim.
type Markup string

type sliceSource struct {
	rows []Row
	next int
}

// SliceSource adapts an in-memory row slice to the RowSource contract.
func SliceSource(rows []Row) RowSource {
	return &sliceSource{rows: rows}
}

func (s *sliceSource) Next() (Row, bool) {
	if s.next >= len(s.rows) {
		return Row{}, false
	}
	row := s.rows[s.next]
	s.next++
	return row, true
}
