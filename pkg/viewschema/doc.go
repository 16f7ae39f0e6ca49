// Package viewschema loads declarative view definitions from YAML or JSON
// documents: the kind label, URL path, columns, actions, and list behavior
// of each browsable collection. Definitions materialize into the descriptor
// and projection types the composer consumes, keeping view wiring out of Go
// code for callers that prefer configuration.
package viewschema
