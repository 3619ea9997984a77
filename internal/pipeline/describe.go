package pipeline

import "fmt"

// Properties is the descriptive metadata of a buffer. It is a fixed-shape
// record rather than an open map: the property set is a closed, known list.
type Properties struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Channels is the number of samples per pixel (1 or 3).
	Channels int `json:"channels"`

	// Shape is the buffer shape as "HxWxC", or "HxW" for grayscale.
	Shape string `json:"shape"`

	// DataType is the sample type name. Always "uint8" for this pipeline.
	DataType string `json:"data_type"`

	// TotalPixels is the total sample count, Height*Width*Channels.
	TotalPixels int `json:"total_pixels"`
}

// Describe derives the descriptive metadata of a buffer. It is a pure read
// of buffer metadata, performs no transformation, and always succeeds for a
// well-formed buffer.
func Describe(b *Buffer) Properties {
	shape := fmt.Sprintf("%dx%d", b.Height, b.Width)
	if b.Channels != GrayChannels {
		shape = fmt.Sprintf("%dx%dx%d", b.Height, b.Width, b.Channels)
	}
	return Properties{
		Width:       b.Width,
		Height:      b.Height,
		Channels:    b.Channels,
		Shape:       shape,
		DataType:    "uint8",
		TotalPixels: b.Height * b.Width * b.Channels,
	}
}
