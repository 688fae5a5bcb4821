package scene

// TextAlign positions text relative to its anchor point.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
)

// TextStyle carries the font decisions the overlay makes for a label.
type TextStyle struct {
	Font  string
	Size  float64
	Color Color
	Align TextAlign
}

// Canvas is a fixed-size 2D bitmap surface used to rasterize label text.
// Coordinates are in pixels with the origin at the top-left corner.
type Canvas interface {
	Size() (w, h int)
	FillRect(x, y, w, h float64, c Color)
	// DrawText renders one line of text anchored at (x, y) per the style's
	// alignment, y giving the text baseline.
	DrawText(text string, x, y float64, style TextStyle)
	// Texture returns the canvas contents as a texture. The caller owns the
	// returned texture and must dispose it.
	Texture() Texture
}

// RoundRectCanvas is an optional Canvas capability. Hosts whose 2D API has a
// rounded-rectangle primitive implement it; the label factory falls back to
// FillRect otherwise.
type RoundRectCanvas interface {
	FillRoundRect(x, y, w, h, radius float64, c Color)
}

// CanvasFactory allocates canvases. One canvas backs exactly one label.
type CanvasFactory interface {
	NewCanvas(w, h int) Canvas
}
