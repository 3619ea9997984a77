package pipeline

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HighlightColor is the default hex color for grid lines and detection
// bounding boxes.
const HighlightColor = "#00FF00"

// OverlayGrid draws a rows x cols grid onto a copy of the buffer.
//
// rows-1 horizontal lines are drawn at y = r*(height/rows) for r in
// 1..rows-1, and cols-1 vertical lines at x = c*(width/cols) for c in
// 1..cols-1, each one pixel wide, spanning the full image. Offsets use
// integer division, so the last row and column of cells absorb any
// remainder, and no line is ever drawn on the image border.
//
// colorHex selects the line color ("#RRGGBB"); an empty or unparsable
// value falls back to HighlightColor. On grayscale buffers the line is
// drawn with the color's luminance.
//
// rows >= 1 and cols >= 1 is a caller precondition; dimensions and
// channel count of the result always match the input.
func OverlayGrid(b *Buffer, rows, cols int, colorHex string) *Buffer {
	lr, lg, lb := parseHighlight(colorHex)
	out := b.Clone()

	cellH := b.Height / rows
	cellW := b.Width / cols

	for r := 1; r < rows; r++ {
		y := r * cellH
		for x := 0; x < b.Width; x++ {
			out.paint(x, y, lr, lg, lb)
		}
	}
	for c := 1; c < cols; c++ {
		x := c * cellW
		for y := 0; y < b.Height; y++ {
			out.paint(x, y, lr, lg, lb)
		}
	}
	return out
}

// paint writes an RGB color to pixel (x, y), reducing to luminance on
// 1-channel buffers. Out-of-bounds coordinates are ignored so stroke
// drawing near edges stays safe.
func (b *Buffer) paint(x, y int, r, g, bl uint8) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	if b.Channels == GrayChannels {
		b.setSample(x, y, 0, luminance(r, g, bl))
		return
	}
	b.setSample(x, y, 0, r)
	b.setSample(x, y, 1, g)
	b.setSample(x, y, 2, bl)
}

// parseHighlight parses a "#RRGGBB" hex color, falling back to
// HighlightColor when the value is empty or malformed.
func parseHighlight(hex string) (r, g, b uint8) {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(HighlightColor)
	}
	return c.RGB255()
}
