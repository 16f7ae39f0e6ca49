// Package render defines the renderer contract and registry shared by every
// output backend. Renderers never see raw descriptors, only the composed
// Page, so output formats cannot drift from the composition rules.
package render
