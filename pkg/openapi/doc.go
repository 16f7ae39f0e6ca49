// Package openapi derives list column specifications from OpenAPI component
// schemas so views can be generated straight from an API contract.
package openapi
