package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-listgen/pkg/model"
)

// extensionKey namespaces the vendor extension listgen reads from property
// schemas. Supported fields: label (string), order (number), hidden (bool).
const extensionKey = "x-listgen"

// unordered sorts properties without an explicit order after ordered ones.
const unordered = float64(1 << 30)

// ColumnsFromSchema loads an OpenAPI document from raw bytes and derives the
// column layout for the named component schema. Properties are ordered by
// their x-listgen order value when present, then alphabetically; properties
// marked hidden are skipped.
func ColumnsFromSchema(ctx context.Context, data []byte, component string) ([]model.ColumnSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return columnsFromDocument(doc, component)
}

func columnsFromDocument(doc *openapi3.T, component string) ([]model.ColumnSpec, error) {
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document declares no component schemas")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("openapi: component schema %q not found", component)
	}
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q is unresolved", component)
	}
	schema := ref.Value
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: component schema %q has no properties", component)
	}

	entries := make([]columnEntry, 0, len(schema.Properties))
	for name, property := range schema.Properties {
		entry := columnEntry{
			spec:  model.ColumnSpec{Key: name, Label: model.Labelize(name)},
			order: unordered,
		}
		if property != nil && property.Value != nil {
			entry.apply(property.Value.Extensions)
		}
		if entry.hidden {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].order != entries[j].order {
			return entries[i].order < entries[j].order
		}
		return entries[i].spec.Key < entries[j].spec.Key
	})

	specs := make([]model.ColumnSpec, len(entries))
	for i, entry := range entries {
		specs[i] = entry.spec
	}
	return specs, nil
}

type columnEntry struct {
	spec   model.ColumnSpec
	order  float64
	hidden bool
}

func (e *columnEntry) apply(extensions map[string]any) {
	raw, ok := extensions[extensionKey]
	if !ok {
		return
	}
	mapped, ok := raw.(map[string]any)
	if !ok {
		return
	}
	if label, ok := mapped["label"].(string); ok && label != "" {
		e.spec.Label = label
	}
	if hidden, ok := mapped["hidden"].(bool); ok {
		e.hidden = hidden
	}
	switch order := mapped["order"].(type) {
	case float64:
		e.order = order
	case int:
		e.order = float64(order)
	}
}
