package pipeline

// BT.601 luminance weights. Perceptual weighting, not simple averaging:
// the eye is most sensitive to green, least to blue.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts a 3-channel buffer to a 1-channel buffer using
// ITU-R BT.601 luminance weights (0.299*R + 0.587*G + 0.114*B).
//
// A buffer that is already grayscale is returned as an unchanged copy, so
// the operation is idempotent and total over well-formed buffers: there is
// no error path.
func Grayscale(b *Buffer) *Buffer {
	if b.Channels == GrayChannels {
		return b.Clone()
	}

	out := &Buffer{
		Width:    b.Width,
		Height:   b.Height,
		Channels: GrayChannels,
		Pix:      make([]uint8, b.Width*b.Height),
	}

	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+1 {
		y := lumaR*float64(b.Pix[i]) + lumaG*float64(b.Pix[i+1]) + lumaB*float64(b.Pix[i+2])
		out.Pix[j] = uint8(y + 0.5)
	}
	return out
}

// luminance returns the BT.601 luminance of an RGB triple as an 8-bit value.
func luminance(r, g, b uint8) uint8 {
	return uint8(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b) + 0.5)
}
