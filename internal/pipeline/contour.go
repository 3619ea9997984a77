package pipeline

import (
	"image"
	"math"
)

// minContourSize is the noise floor for contour extraction: connected
// components with fewer edge pixels are discarded before tracing.
const minContourSize = 10

// contour is a connected component of edge pixels together with its traced
// outer boundary, bounding box and enclosed area.
type contour struct {
	// pixels is every edge pixel belonging to the component.
	pixels []image.Point

	// boundary is the ordered outer boundary, clockwise from the
	// topmost-leftmost pixel.
	boundary []image.Point

	// bbox is the axis-aligned bounding rectangle of the component.
	bbox image.Rectangle

	// area is the area enclosed by the outer boundary, in square pixels.
	// A thin open curve encloses almost nothing and scores near zero.
	area float64
}

// externalContours extracts the outermost contours from a binary edge
// buffer (1-channel, edge pixels nonzero).
//
// Edge pixels are grouped into 8-connected components; components nested
// inside another component's bounding box are dropped, so only outer
// boundaries survive. Nested and internal contours are ignored by design,
// trading completeness for fewer duplicate boxes. Enumeration order is
// scan order of each component's first pixel and is not part of the
// contract.
func externalContours(edges *Buffer) []contour {
	width, height := edges.Width, edges.Height

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	contours := make([]contour, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if edges.At(x, y, 0) == 0 || visited[y][x] {
				continue
			}
			pixels := collectComponent(edges, visited, x, y)
			if len(pixels) < minContourSize {
				continue
			}
			c := contour{pixels: pixels, bbox: boundingBox(pixels)}
			c.boundary = traceBoundary(edges, c.bbox, pixels[0])
			c.area = enclosedArea(c.boundary)
			contours = append(contours, c)
		}
	}

	return dropNested(contours)
}

// collectComponent flood-fills the 8-connected component containing
// (startX, startY). Stack-based rather than recursive so large components
// cannot overflow the stack.
func collectComponent(edges *Buffer, visited [][]bool, startX, startY int) []image.Point {
	width, height := edges.Width, edges.Height
	stack := []image.Point{{X: startX, Y: startY}}
	pixels := make([]image.Point, 0)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || edges.At(p.X, p.Y, 0) == 0 {
			continue
		}

		visited[p.Y][p.X] = true
		pixels = append(pixels, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return pixels
}

// boundingBox returns the tight axis-aligned bounding rectangle of a pixel
// set, in the usual half-open image.Rectangle convention.
func boundingBox(pixels []image.Point) image.Rectangle {
	minX, minY := pixels[0].X, pixels[0].Y
	maxX, maxY := minX, minY
	for _, p := range pixels[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// mooreDirs enumerates the 8-neighborhood clockwise starting at north.
var mooreDirs = [8]image.Point{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// traceBoundary walks the outer boundary of the component containing start
// using Moore neighbor tracing, clockwise. start must be the component's
// first pixel in scan order (topmost row, leftmost within it), which
// guarantees it lies on the outer boundary.
//
// The walk is bounded to keep malformed inputs from looping forever.
func traceBoundary(edges *Buffer, bbox image.Rectangle, start image.Point) []image.Point {
	inEdges := func(p image.Point) bool {
		return p.X >= 0 && p.X < edges.Width && p.Y >= 0 && p.Y < edges.Height &&
			edges.At(p.X, p.Y, 0) != 0
	}

	boundary := []image.Point{start}
	cur := start
	// Scan starts pointing north; everything above the start pixel is
	// background by choice of start.
	scan := 0
	maxSteps := 4 * bbox.Dx() * bbox.Dy()
	if maxSteps < 8 {
		maxSteps = 8
	}

	for step := 0; step < maxSteps; step++ {
		moved := false
		for i := 0; i < 8; i++ {
			d := (scan + i) % 8
			next := cur.Add(mooreDirs[d])
			if inEdges(next) {
				if next == start {
					return boundary
				}
				boundary = append(boundary, next)
				cur = next
				// Resume scanning one step clockwise of the direction
				// pointing back at the previous pixel.
				scan = (d + 5) % 8
				moved = true
				break
			}
		}
		if !moved {
			// Isolated pixel: degenerate boundary.
			return boundary
		}
	}
	return boundary
}

// enclosedArea computes the area enclosed by an ordered boundary polygon
// using the shoelace formula. Open or degenerate boundaries score near
// zero, which is exactly the false-positive behavior the area filter
// relies on.
func enclosedArea(boundary []image.Point) float64 {
	if len(boundary) < 3 {
		return 0
	}
	var sum float64
	for i := range boundary {
		j := (i + 1) % len(boundary)
		sum += float64(boundary[i].X*boundary[j].Y - boundary[j].X*boundary[i].Y)
	}
	return math.Abs(sum) / 2
}

// dropNested removes contours whose bounding box lies strictly inside
// another contour's bounding box, approximating external-only retrieval:
// the inner ring of a thick outline, or a hole boundary, is suppressed in
// favor of the outermost contour.
func dropNested(contours []contour) []contour {
	kept := make([]contour, 0, len(contours))
	for i, c := range contours {
		nested := false
		for j, other := range contours {
			if i == j {
				continue
			}
			if c.bbox != other.bbox && c.bbox.In(other.bbox) {
				nested = true
				break
			}
		}
		if !nested {
			kept = append(kept, c)
		}
	}
	return kept
}
