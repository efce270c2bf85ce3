package gui

// FontProvider supplies the font the GUI renders text with.
// The GUI package does not depend on any concrete font implementation;
// applications inject one with Context.SetFontProvider. Without a provider
// the built-in 8x8 bitmap font is used and text is measured in monospace
// cells.
type FontProvider interface {
	// ActiveFont returns the font to render with, or nil for the built-in one.
	ActiveFont() Font
}

// Font renders text from a pre-built texture atlas.
type Font interface {
	// TextureID returns the texture of the glyph atlas.
	TextureID() uint32

	// MeasureText returns the pixel size of text at scale.
	MeasureText(text string, scale float32) FontVec2

	// GetGlyphQuads returns one quad per glyph of text placed at (x, y).
	// The slice is only valid until the next call.
	GetGlyphQuads(text string, x, y, scale float32) []FontGlyphQuad

	// LineHeight returns the line height at scale.
	LineHeight(scale float32) float32
}

// FontVec2 is a size returned by Font.MeasureText.
type FontVec2 struct {
	X, Y float32
}

// FontGlyphQuad is one glyph's screen and texture rectangle.
type FontGlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32

	U0, V0 float32
	U1, V1 float32
}
