package pipeline

// DefaultMinArea is the default minimum enclosed area, in square pixels,
// for a contour to count as a detected object. This is the primary
// false-positive suppression knob.
const DefaultMinArea = 500

// boxStroke is the stroke width of detection bounding boxes, in pixels.
const boxStroke = 2

// dilationPad is how far the edge-map dilation extends an outline on each
// side. Bounding boxes are inset by the same amount so they hug the
// original outline.
const dilationPad = 1

// Box is an axis-aligned bounding box in pixel coordinates.
type Box struct {
	// X is the left edge of the box.
	X int `json:"x"`

	// Y is the top edge of the box.
	Y int `json:"y"`

	// Width is the horizontal extent in pixels.
	Width int `json:"width"`

	// Height is the vertical extent in pixels.
	Height int `json:"height"`
}

// Detection is the result of object detection: the annotated copy of the
// source buffer plus the surviving bounding boxes.
type Detection struct {
	// Annotated is a copy of the input with a bounding box drawn around
	// each detected object. An image with no detections is an unmodified
	// copy.
	Annotated *Buffer

	// Boxes holds one bounding box per detected object. Order is
	// detector-defined and not guaranteed stable.
	Boxes []Box

	// Count is the number of detected objects, len(Boxes).
	Count int
}

// DetectObjects locates approximate foreground regions without any learned
// model, drawing bounding boxes on a copy of the input.
//
// The stages, in order, each output feeding the next:
//
//  1. Grayscale conversion
//  2. 5x5 Gaussian smoothing
//  3. Edge detection with fixed thresholds low=50, high=150
//  4. One-pixel dilation of the edge map, closing the small breaks that
//     non-maximum suppression leaves where an outline turns a corner
//  5. External contour extraction (outer boundaries only)
//  6. Area filter: contours whose enclosed area does not exceed minArea
//     are discarded
//  7. Axis-aligned bounding boxes, inset by the dilation pad and drawn
//     with a 2-pixel green stroke
//
// minArea <= 0 falls back to DefaultMinArea. An image with no edges yields
// Count == 0 and an unmodified-looking copy; there is no failure path for
// a well-formed buffer. Raising minArea never increases the count.
func DetectObjects(b *Buffer, minArea int) *Detection {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}

	edges := dilate(EdgeMap(b, EdgeLowThreshold, EdgeHighThreshold))
	contours := externalContours(edges)

	annotated := b.Clone()
	boxes := make([]Box, 0, len(contours))
	r, g, bl := parseHighlight(HighlightColor)

	for _, c := range contours {
		if c.area <= float64(minArea) {
			continue
		}
		rect := c.bbox.Inset(dilationPad)
		box := Box{
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
		}
		drawBox(annotated, box, r, g, bl)
		boxes = append(boxes, box)
	}

	return &Detection{
		Annotated: annotated,
		Boxes:     boxes,
		Count:     len(boxes),
	}
}

// dilate thickens every edge pixel into its full 3x3 neighborhood.
//
// Non-maximum suppression thins outlines to single pixels and can leave
// breaks of up to two pixels where an outline turns a corner, splitting a
// shape's boundary into disconnected open fragments that each enclose
// nothing. Dilation bridges any gap of at most two pixels, so a closed
// shape's boundary reaches contour extraction as one connected component
// whose enclosed area approximates the shape's area.
func dilate(edges *Buffer) *Buffer {
	out := &Buffer{
		Width:    edges.Width,
		Height:   edges.Height,
		Channels: GrayChannels,
		Pix:      make([]uint8, edges.Width*edges.Height),
	}

	for y := 0; y < edges.Height; y++ {
		for x := 0; x < edges.Width; x++ {
			if edges.At(x, y, 0) == 0 {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					px := clamp(x+dx, 0, edges.Width-1)
					py := clamp(y+dy, 0, edges.Height-1)
					out.setSample(px, py, 0, 255)
				}
			}
		}
	}
	return out
}

// drawBox strokes a rectangle outline onto the buffer. The stroke grows
// inward from the box edge so boxes near the image border stay visible.
func drawBox(b *Buffer, box Box, r, g, bl uint8) {
	x2 := box.X + box.Width - 1
	y2 := box.Y + box.Height - 1

	for t := 0; t < boxStroke; t++ {
		for x := box.X; x <= x2; x++ {
			b.paint(x, box.Y+t, r, g, bl)
			b.paint(x, y2-t, r, g, bl)
		}
		for y := box.Y; y <= y2; y++ {
			b.paint(box.X+t, y, r, g, bl)
			b.paint(x2-t, y, r, g, bl)
		}
	}
}
