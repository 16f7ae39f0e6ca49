// Package query defines the capability interfaces the page composer accepts
// for sorting, filtering, and pagination, plus default implementations that
// keep their state in the request query string. The composer only ever sees
// the capability surface; any implementation of Sorter, Filterer, or
// Paginator slots in. Query execution itself stays with the data layer:
// Sort.Order, Pager.Offset/Limit, and FilterSet.Value report the state for
// the caller to apply.
package query
