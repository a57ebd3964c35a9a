// Package swatch renders PNG previews of a mix: the result color as the
// canvas, a yellow-to-blue gradient band with a marker at the mix ratio, and
// a strip of the input shades in insertion order.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-mixer/internal/mixer"
)

// Rendering bounds. Anything outside is rejected rather than clamped.
const (
	MinSize = 16
	MaxSize = 1024

	// DefaultSize is the edge length used when the caller does not specify
	// dimensions.
	DefaultSize = 256
)

// Render produces the preview image for a computed mix.
//
// Parameters:
//   - result: the mix output, used to fill the canvas.
//   - inputs: the mixer contents in insertion order, used for the ratio
//     marker and the input strip.
//   - width, height: output dimensions in pixels, each within
//     [MinSize, MaxSize].
//
// Returns mixer.ErrNoColors for an empty input slice and
// mixer.ErrInvalidColorFormat for out-of-range dimensions. The output is
// deterministic for a given mixer state.
//
// # Layout
//
// The top quarter is a left-to-right gradient from the yellow anchor to the
// blue anchor with a 2px white marker at the blue fraction of the mix. The
// bottom quarter shows one cell per input color. The middle half is the
// result color.
func Render(result mixer.Color, inputs []mixer.Color, width, height int) (image.Image, error) {
	if len(inputs) == 0 {
		return nil, mixer.ErrNoColors
	}
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, fmt.Errorf("%w: swatch dimensions %dx%d outside [%d, %d]",
			mixer.ErrInvalidColorFormat, width, height, MinSize, MaxSize)
	}

	canvas := imaging.New(width, height, toNRGBA(result))

	if overlay := gradientOverlay(inputs, width, height); overlay != nil {
		canvas = imaging.Clone(blend.Normal(canvas, overlay))
	}

	canvas = pasteInputStrip(canvas, inputs, width, height)
	return canvas, nil
}

// RenderPNG renders the preview and encodes it as PNG.
func RenderPNG(result mixer.Color, inputs []mixer.Color, width, height int) ([]byte, error) {
	img, err := Render(result, inputs, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: png encoding: %v", mixer.ErrInternal, err)
	}
	return buf.Bytes(), nil
}

// gradientOverlay builds a transparent full-size overlay whose top quarter is
// the yellow-to-blue gradient with the ratio marker. Returns nil when no
// entry belongs to either family, in which case there is no ratio to show.
func gradientOverlay(inputs []mixer.Color, width, height int) *image.NRGBA {
	yellows, blues := familyCounts(inputs)
	if yellows+blues == 0 {
		return nil
	}

	overlay := image.NewNRGBA(image.Rect(0, 0, width, height))
	bandHeight := height / 4

	from := toColorful(mixer.Yellow)
	to := toColorful(mixer.Blue)
	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		r, g, b := from.BlendRgb(to, t).RGB255()
		c := color.NRGBA{R: r, G: g, B: b, A: 255}
		for y := 0; y < bandHeight; y++ {
			overlay.SetNRGBA(x, y, c)
		}
	}

	// 2px marker at the blue fraction of the recognized entries.
	marker := int(float64(blues) / float64(yellows+blues) * float64(width-1))
	for x := marker; x < marker+2 && x < width; x++ {
		for y := 0; y < bandHeight; y++ {
			overlay.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	return overlay
}

// pasteInputStrip draws one cell per input color along the bottom quarter.
// With more inputs than pixel columns the trailing entries are not shown.
func pasteInputStrip(canvas *image.NRGBA, inputs []mixer.Color, width, height int) *image.NRGBA {
	stripHeight := height / 4
	if stripHeight == 0 {
		return canvas
	}

	cellWidth := width / len(inputs)
	if cellWidth < 1 {
		cellWidth = 1
	}

	y := height - stripHeight
	for i, in := range inputs {
		x := i * cellWidth
		if x >= width {
			break
		}
		cell := imaging.New(cellWidth, stripHeight, toNRGBA(in))
		canvas = imaging.Paste(canvas, cell, image.Pt(x, y))
	}
	return canvas
}

func familyCounts(inputs []mixer.Color) (yellows, blues int) {
	for _, c := range inputs {
		switch c.Family {
		case mixer.FamilyYellow:
			yellows++
		case mixer.FamilyBlue:
			blues++
		}
	}
	return yellows, blues
}

func toNRGBA(c mixer.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func toColorful(c mixer.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
