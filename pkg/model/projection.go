package model

import (
	"reflect"
	"strings"
	"unicode"
)

// ColumnSpec describes how one column extracts its display value from a
// record. When Value is nil the projection falls back to a reflective lookup
// by Key (map entry, exported struct field, or no-argument method).
type ColumnSpec struct {
	Key   string
	Label string
	Value func(instance any) any
}

// Projection maps records to ordered cell sequences aligned with its headers.
type Projection struct {
	columns []ColumnSpec
}

// NewProjection builds a projection from the given column specs. Columns with
// an empty label get one derived from the key.
func NewProjection(columns ...ColumnSpec) Projection {
	specs := make([]ColumnSpec, len(columns))
	for i, col := range columns {
		if col.Label == "" {
			col.Label = Labelize(col.Key)
		}
		specs[i] = col
	}
	return Projection{columns: specs}
}

// Field declares a column that resolves its value by key lookup on the
// record.
func Field(key string) ColumnSpec {
	return ColumnSpec{Key: key}
}

// Column declares a computed column.
func Column(key string, value func(instance any) any) ColumnSpec {
	return ColumnSpec{Key: key, Value: value}
}

// Headers returns the ordered (key, label) pairs for the projection.
func (p Projection) Headers() []Header {
	headers := make([]Header, len(p.columns))
	for i, col := range p.columns {
		headers[i] = Header{Key: col.Key, Label: col.Label}
	}
	return headers
}

// Project produces the cell sequence for one record, aligned with Headers.
func (p Projection) Project(instance any) Row {
	cells := make([]any, len(p.columns))
	for i, col := range p.columns {
		if col.Value != nil {
			cells[i] = col.Value(instance)
			continue
		}
		cells[i] = lookup(instance, col.Key)
	}
	return Row{Instance: instance, Cells: cells}
}

type projectedSource struct {
	projection Projection
	instances  []any
	next       int
}

// Source returns a lazy RowSource that projects each instance on demand.
func (p Projection) Source(instances []any) RowSource {
	return &projectedSource{projection: p, instances: instances}
}

// Table bundles the projection headers with a lazy source over instances.
func (p Projection) Table(instances []any) Table {
	return Table{Headers: p.Headers(), Rows: p.Source(instances)}
}

func (s *projectedSource) Next() (Row, bool) {
	if s.next >= len(s.instances) {
		return Row{}, false
	}
	row := s.projection.Project(s.instances[s.next])
	s.next++
	return row, true
}

// Labelize derives a display label from a column key: underscores become
// spaces and each word is capitalized, so "created_at" reads "Created At".
func Labelize(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// lookup resolves a value by key against maps, struct fields, and
// no-argument methods. Missing keys resolve to nil so the display layer can
// degrade instead of the projection failing.
func lookup(instance any, key string) any {
	if instance == nil {
		return nil
	}

	if m, ok := instance.(map[string]any); ok {
		return m[key]
	}

	value := reflect.ValueOf(instance)
	name := exportedName(key)

	if method := value.MethodByName(name); method.IsValid() {
		if t := method.Type(); t.NumIn() == 0 && t.NumOut() == 1 {
			return method.Call(nil)[0].Interface()
		}
	}

	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	if field := value.FieldByName(name); field.IsValid() && field.CanInterface() {
		return field.Interface()
	}
	return nil
}

// exportedName converts a snake_case key into the exported Go identifier it
// addresses: "created_at" looks up "CreatedAt".
func exportedName(key string) string {
	words := strings.Split(key, "_")
	var b strings.Builder
	for _, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
