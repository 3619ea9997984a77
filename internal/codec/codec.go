// Package codec is the decode/encode boundary of the pipeline: raw uploaded
// bytes become a validated pixel buffer on the way in, and buffers become
// PNG bytes (optionally base64) on the way out.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF and WebP. Output is
// always PNG. The codec guarantees the core only ever sees a well-formed
// 3-channel 8-bit buffer.
package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"imagelab/internal/pipeline"
)

// MimePNG is the MIME type of every image the codec produces.
const MimePNG = "image/png"

// Decode reads an image in any registered format and converts it to a
// 3-channel RGB buffer.
//
// Returns the buffer together with the detected format name ("png",
// "jpeg", ...). Fails if the bytes are not a decodable image or decode to
// zero-sized bounds.
func Decode(r io.Reader) (*pipeline.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	buf, err := pipeline.FromImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("decoded %s image is malformed: %w", format, err)
	}
	return buf, format, nil
}

// EncodePNG encodes a buffer as PNG bytes.
func EncodePNG(b *pipeline.Buffer) ([]byte, error) {
	var out bytes.Buffer
	if err := png.Encode(&out, b.ToImage()); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return out.Bytes(), nil
}

// EncodeBase64PNG encodes a buffer as a base64 PNG string, the transport
// representation used in JSON responses.
func EncodeBase64PNG(b *pipeline.Buffer) (string, error) {
	raw, err := EncodePNG(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
