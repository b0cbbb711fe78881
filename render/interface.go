package render

// SystemRenderer is implemented by each layer of the frame
type SystemRenderer interface {
	Render(ctx *RenderContext, c *Canvas)
}

// VisibilityToggle is optionally implemented by layers bound to a display setting
type VisibilityToggle interface {
	IsVisible(ctx *RenderContext) bool
}
