package pipeline

import (
	"fmt"
	"image"
	"image/color"
)

// Channel counts supported by the pipeline.
const (
	// GrayChannels is the channel count of a grayscale buffer.
	GrayChannels = 1

	// RGBChannels is the channel count of a color buffer.
	RGBChannels = 3
)

// Buffer is the in-memory representation of a decoded image: a
// Height x Width x Channels grid of 8-bit samples.
//
// Samples are stored row-major and interleaved. For 3-channel buffers the
// channel order is R, G, B. The invariant len(Pix) == Width*Height*Channels
// holds for every Buffer produced by this package.
//
// Pipeline operations never mutate a Buffer they receive; they return a new
// Buffer (or draw on a private clone). Callers that hold a Buffer may treat
// results as immutable snapshots.
type Buffer struct {
	// Width is the image width in pixels. Always positive.
	Width int

	// Height is the image height in pixels. Always positive.
	Height int

	// Channels is the number of samples per pixel: 1 (grayscale) or 3 (RGB).
	Channels int

	// Pix holds the samples, row-major, channels interleaved.
	Pix []uint8
}

// New creates a zero-filled buffer with the given dimensions.
//
// Returns an error if width or height is not positive, or if channels is
// neither 1 nor 3. This is the validation point for the whole pipeline:
// a Buffer that exists is well-formed.
func New(width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer dimensions %dx%d: width and height must be positive", width, height)
	}
	if channels != GrayChannels && channels != RGBChannels {
		return nil, fmt.Errorf("invalid channel count %d: must be 1 or 3", channels)
	}
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

// FromImage converts a decoded image into a 3-channel RGB buffer.
//
// Bounds are normalized so the buffer origin is always (0,0) regardless of
// the source image's Min point. 16-bit source samples are scaled down to
// 8 bits. Alpha is discarded; the decode boundary guarantees opaque input.
//
// Returns an error if the image has zero-sized bounds.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy(), RGBChannels)
	if err != nil {
		return nil, err
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf.Pix[i] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return buf, nil
}

// fromImageChannels converts an image back into a buffer with the given
// channel count. Used after round-trips through image.Image-based libraries
// so transforms preserve the source's channel count. For channels == 1 the
// red component is read directly; a grayscale image converted to RGBA has
// R == G == B, so this is lossless.
func fromImageChannels(img image.Image, channels int) *Buffer {
	bounds := img.Bounds()
	buf := &Buffer{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: channels,
		Pix:      make([]uint8, bounds.Dx()*bounds.Dy()*channels),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if channels == GrayChannels {
				buf.Pix[i] = uint8(r >> 8)
				i++
			} else {
				buf.Pix[i] = uint8(r >> 8)
				buf.Pix[i+1] = uint8(g >> 8)
				buf.Pix[i+2] = uint8(b >> 8)
				i += 3
			}
		}
	}
	return buf
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{
		Width:    b.Width,
		Height:   b.Height,
		Channels: b.Channels,
		Pix:      pix,
	}
}

// At returns the sample at pixel (x, y), channel c.
// Coordinates must be within bounds; this is a caller precondition.
func (b *Buffer) At(x, y, c int) uint8 {
	return b.Pix[(y*b.Width+x)*b.Channels+c]
}

// setSample writes the sample at pixel (x, y), channel c.
// Only the annotating operations use this, always on a private clone.
func (b *Buffer) setSample(x, y, c int, v uint8) {
	b.Pix[(y*b.Width+x)*b.Channels+c] = v
}

// ToImage converts the buffer to a standard image for the display and
// encode boundaries: *image.Gray for 1-channel buffers, *image.RGBA
// (fully opaque) for 3-channel buffers.
func (b *Buffer) ToImage() image.Image {
	rect := image.Rect(0, 0, b.Width, b.Height)

	if b.Channels == GrayChannels {
		img := image.NewGray(rect)
		copy(img.Pix, b.Pix)
		return img
	}

	img := image.NewRGBA(rect)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := (y*b.Width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 255})
		}
	}
	return img
}

// Validate checks the buffer invariants: positive dimensions, a channel
// count of 1 or 3, and a sample slice matching Width*Height*Channels.
//
// Buffers built by this package always pass; Validate exists so callers
// that construct a Buffer by hand can fail fast instead of propagating
// undefined behavior into the pipeline.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("nil buffer")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid buffer dimensions %dx%d: width and height must be positive", b.Width, b.Height)
	}
	if b.Channels != GrayChannels && b.Channels != RGBChannels {
		return fmt.Errorf("invalid channel count %d: must be 1 or 3", b.Channels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("sample slice length %d does not match %dx%dx%d (want %d)",
			len(b.Pix), b.Height, b.Width, b.Channels, want)
	}
	return nil
}
