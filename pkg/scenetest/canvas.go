package scenetest

import (
	"github.com/google/uuid"

	"specto/pkg/geom"
	"specto/pkg/scene"
)

// Texture is an in-memory scene.Texture with a disposal flag.
type Texture struct {
	id       string
	Source   *Canvas
	disposed bool
}

func (t *Texture) ID() string     { return t.id }
func (t *Texture) Dispose()       { t.disposed = true }
func (t *Texture) Disposed() bool { return t.disposed }

// RectFill records one FillRect call.
type RectFill struct {
	X, Y, W, H float64
	Color      geom.Color
}

// RoundRectFill records one FillRoundRect call.
type RoundRectFill struct {
	X, Y, W, H float64
	Radius     float64
	Color      geom.Color
}

// TextDraw records one DrawText call.
type TextDraw struct {
	Text  string
	X, Y  float64
	Style scene.TextStyle
}

// Canvas is a flat 2D surface that records draw calls instead of
// rasterizing them.
type Canvas struct {
	width, height int

	Rects      []RectFill
	RoundRects []RoundRectFill
	Texts      []TextDraw

	Textures []*Texture
}

func (c *Canvas) Size() (width, height int) { return c.width, c.height }

func (c *Canvas) FillRect(x, y, w, h float64, color geom.Color) {
	c.Rects = append(c.Rects, RectFill{X: x, Y: y, W: w, H: h, Color: color})
}

func (c *Canvas) DrawText(text string, x, y float64, style scene.TextStyle) {
	c.Texts = append(c.Texts, TextDraw{Text: text, X: x, Y: y, Style: style})
}

func (c *Canvas) Texture() scene.Texture {
	t := &Texture{id: uuid.NewString(), Source: c}
	c.Textures = append(c.Textures, t)
	return t
}

// RoundCanvas is a Canvas that also supports rounded-corner fills,
// satisfying scene.RoundRectCanvas.
type RoundCanvas struct {
	*Canvas
}

func (c *RoundCanvas) FillRoundRect(x, y, w, h, radius float64, color geom.Color) {
	c.RoundRects = append(c.RoundRects, RoundRectFill{X: x, Y: y, W: w, H: h, Radius: radius, Color: color})
}

// CanvasFactory creates recording canvases. With Rounded set, canvases
// additionally implement scene.RoundRectCanvas.
type CanvasFactory struct {
	Rounded bool
	Created []*Canvas
}

func (f *CanvasFactory) NewCanvas(width, height int) scene.Canvas {
	c := &Canvas{width: width, height: height}
	f.Created = append(f.Created, c)
	if f.Rounded {
		return &RoundCanvas{Canvas: c}
	}
	return c
}
