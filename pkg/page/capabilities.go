package page

import "github.com/goliatone/go-listgen/pkg/query"

// AsSorter coerces a duck-typed capability value. nil passes through as
// "absent"; any other value must implement query.Sorter.
func AsSorter(v any) (query.Sorter, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(query.Sorter); ok {
		return s, nil
	}
	return nil, &MissingCapabilityError{Capability: "sorter", Value: v}
}

// AsFilterer coerces a duck-typed filter value.
func AsFilterer(v any) (query.Filterer, error) {
	if v == nil {
		return nil, nil
	}
	if f, ok := v.(query.Filterer); ok {
		return f, nil
	}
	return nil, &MissingCapabilityError{Capability: "filterer", Value: v}
}

// AsPaginator coerces a duck-typed paginator value.
func AsPaginator(v any) (query.Paginator, error) {
	if v == nil {
		return nil, nil
	}
	if p, ok := v.(query.Paginator); ok {
		return p, nil
	}
	return nil, &MissingCapabilityError{Capability: "paginator", Value: v}
}
