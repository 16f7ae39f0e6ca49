// Package page implements the list-view composition contract: it combines a
// view descriptor, a table projection, and the optional sort, filter, and
// pagination capabilities into one Page value with no redundant computation.
// Composition is a single pass over a single-use row source; permission
// predicates run exactly once per action and scope, and every link on the
// page flows through the same URL builder with the same carried parameters.
// Renderers consume the Page read-only.
package page
