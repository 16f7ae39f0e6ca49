package render

// RenderOptions carry per-request data renderers can use to customise their
// output without reaching back into the composition pipeline.
type RenderOptions struct {
	// Popup marks popup-mode requests. Renderers can drop the surrounding
	// chrome (navigation, breadcrumbs) for popup pages.
	Popup bool
	// Theme carries the resolved theme configuration, nil when the caller
	// did not select one.
	Theme *ThemeConfig
}
