package pipeline

import (
	"image"

	"github.com/disintegration/imaging"
)

// Rotation angles recognized by Rotate. Any other value is an identity.
const (
	Rotate90  = 90
	Rotate180 = 180
	Rotate270 = 270
)

// Rotate returns the buffer rotated clockwise by the given angle.
//
// Recognized angles are 90, 180 and 270 degrees. 90 and 270 swap the
// buffer's width and height; 180 preserves them. Any other angle returns
// an unchanged copy of the input. That is a documented policy, not an
// error: callers are expected to supply valid angles, and the function
// must not fail when they do not.
//
// The channel count of the input is always preserved.
func Rotate(b *Buffer, angle int) *Buffer {
	var rotated image.Image

	// The imaging package rotates counter-clockwise, so a clockwise 90
	// maps to Rotate270 and vice versa.
	switch angle {
	case Rotate90:
		rotated = imaging.Rotate270(b.ToImage())
	case Rotate180:
		rotated = imaging.Rotate180(b.ToImage())
	case Rotate270:
		rotated = imaging.Rotate90(b.ToImage())
	default:
		return b.Clone()
	}

	return fromImageChannels(rotated, b.Channels)
}

// Mirror returns the buffer flipped horizontally: column order is reversed
// within every row, dimensions are unchanged. Mirror is its own inverse.
func Mirror(b *Buffer) *Buffer {
	return fromImageChannels(imaging.FlipH(b.ToImage()), b.Channels)
}
