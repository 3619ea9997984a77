package pipeline

import (
	"image"
	"testing"
)

func TestExternalContours_Empty(t *testing.T) {
	edges := binaryBuffer(40, 40)

	if got := externalContours(edges); len(got) != 0 {
		t.Errorf("blank edge map: got %d contours, want 0", len(got))
	}
}

func TestExternalContours_SingleRing(t *testing.T) {
	edges := binaryBuffer(60, 50)
	drawRing(edges, 10, 10, 39, 29) // 30x20 closed outline

	contours := externalContours(edges)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}

	c := contours[0]
	want := image.Rect(10, 10, 40, 30)
	if c.bbox != want {
		t.Errorf("bounding box: got %v, want %v", c.bbox, want)
	}

	// A closed 30x20 outline encloses (30-1)*(20-1) = 551 square pixels.
	if c.area < 500 || c.area > 600 {
		t.Errorf("enclosed area: got %.1f, want ~551", c.area)
	}
}

func TestExternalContours_ThinLineEnclosesNothing(t *testing.T) {
	edges := binaryBuffer(50, 20)
	for x := 5; x < 35; x++ {
		edges.setSample(x, 10, 0, 255)
	}

	contours := externalContours(edges)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	if contours[0].area > 1 {
		t.Errorf("open curve area: got %.1f, want ~0", contours[0].area)
	}
}

func TestExternalContours_NoiseFloor(t *testing.T) {
	edges := binaryBuffer(30, 30)
	// 3x3 speck: nine pixels, below the minimum contour size.
	for y := 5; y < 8; y++ {
		for x := 5; x < 8; x++ {
			edges.setSample(x, y, 0, 255)
		}
	}

	if got := externalContours(edges); len(got) != 0 {
		t.Errorf("speck below noise floor: got %d contours, want 0", len(got))
	}
}

func TestExternalContours_TwoSeparateRings(t *testing.T) {
	edges := binaryBuffer(100, 50)
	drawRing(edges, 5, 5, 34, 34)
	drawRing(edges, 60, 10, 89, 39)

	contours := externalContours(edges)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
}

func TestExternalContours_NestedRingDropped(t *testing.T) {
	edges := binaryBuffer(60, 60)
	drawRing(edges, 5, 5, 44, 44)
	drawRing(edges, 15, 15, 34, 34) // strictly inside the first

	contours := externalContours(edges)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1 (inner contour is not external)", len(contours))
	}
	if want := image.Rect(5, 5, 45, 45); contours[0].bbox != want {
		t.Errorf("surviving contour: got %v, want outer ring %v", contours[0].bbox, want)
	}
}

func TestEnclosedArea(t *testing.T) {
	tests := []struct {
		name     string
		boundary []image.Point
		want     float64
	}{
		{"empty", nil, 0},
		{"two points", []image.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}, 0},
		{"unit triangle", []image.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}, 8},
		{"square", []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enclosedArea(tt.boundary); got != tt.want {
				t.Errorf("enclosedArea: got %.1f, want %.1f", got, tt.want)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	pixels := []image.Point{{X: 3, Y: 7}, {X: 9, Y: 2}, {X: 5, Y: 5}}

	got := boundingBox(pixels)
	if want := image.Rect(3, 2, 10, 8); got != want {
		t.Errorf("boundingBox: got %v, want %v", got, want)
	}
}

// Helper functions

// binaryBuffer creates a zeroed 1-channel buffer for hand-built edge maps.
func binaryBuffer(width, height int) *Buffer {
	buf, err := New(width, height, GrayChannels)
	if err != nil {
		panic(err)
	}
	return buf
}

// drawRing marks the one-pixel outline of the inclusive rectangle
// (x1,y1)-(x2,y2) as edge pixels.
func drawRing(b *Buffer, x1, y1, x2, y2 int) {
	for x := x1; x <= x2; x++ {
		b.setSample(x, y1, 0, 255)
		b.setSample(x, y2, 0, 255)
	}
	for y := y1; y <= y2; y++ {
		b.setSample(x1, y, 0, 255)
		b.setSample(x2, y, 0, 255)
	}
}
