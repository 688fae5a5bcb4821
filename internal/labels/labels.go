// Package labels renders billboard text sprites from 2D canvases.
package labels

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"specto/pkg/geom"
	"specto/pkg/scene"
)

// Canvas geometry shared by every label. The 4:1 canvas maps onto a
// 2 x 0.5 world-unit sprite so text keeps its aspect ratio.
const (
	canvasWidth  = 256
	canvasHeight = 64
	fontSize     = 28
	cornerRadius = 18

	spriteWidth  = 2.0
	spriteHeight = 0.5

	// Baseline that vertically centers fontSize text on the canvas.
	textBaseline = 42
)

// Style selects the label's colors.
type Style struct {
	Background geom.Color
	Text       geom.Color
}

// Label pairs a billboard sprite with the texture backing it. The texture
// must be disposed when the label is removed.
type Label struct {
	Node    scene.Node
	Texture scene.Texture
}

// Factory builds labels through the host's canvas and scene ports,
// formatting numbers for the configured locale.
type Factory struct {
	scenes   scene.Factory
	canvases scene.CanvasFactory
	printer  *message.Printer
}

// NewFactory creates a label factory rendering numbers in the given locale.
func NewFactory(scenes scene.Factory, canvases scene.CanvasFactory, locale language.Tag) *Factory {
	return &Factory{
		scenes:   scenes,
		canvases: canvases,
		printer:  message.NewPrinter(locale),
	}
}

// Create renders text into a fresh canvas and wraps it in a sprite.
// Hosts with rounded-rectangle support get a pill background; the rest
// fall back to a plain rectangle.
func (f *Factory) Create(text string, style Style) Label {
	canvas := f.canvases.NewCanvas(canvasWidth, canvasHeight)

	if rounded, ok := canvas.(scene.RoundRectCanvas); ok {
		rounded.FillRoundRect(0, 0, canvasWidth, canvasHeight, cornerRadius, style.Background)
	} else {
		canvas.FillRect(0, 0, canvasWidth, canvasHeight, style.Background)
	}

	canvas.DrawText(text, canvasWidth/2, textBaseline, scene.TextStyle{
		Font:  "sans-serif",
		Size:  fontSize,
		Color: style.Text,
		Align: scene.AlignCenter,
	})

	texture := canvas.Texture()
	sprite := f.scenes.NewSprite(texture, scene.SpriteSpec{
		Scale: geom.Vec3{X: spriteWidth, Y: spriteHeight, Z: 1},
	})
	return Label{Node: sprite, Texture: texture}
}

// Percent formats a fraction as a whole percentage, e.g. 0.94 -> "94%".
func (f *Factory) Percent(frac float64) string {
	return f.printer.Sprintf("%.0f%%", frac*100)
}

// Delta formats a signed percent change with a direction glyph,
// e.g. "▲ +12.5%" or "▼ -8.3%".
func (f *Factory) Delta(pct float64, improved bool) string {
	return deltaGlyph(improved) + " " + f.printer.Sprintf("%+.1f%%", pct)
}

// DeltaUnknown formats a delta whose percentage is undefined, keeping the
// direction glyph but replacing the number with "n/a".
func (f *Factory) DeltaUnknown(improved bool) string {
	return deltaGlyph(improved) + " n/a"
}

func deltaGlyph(improved bool) string {
	if improved {
		return "▲"
	}
	return "▼"
}
