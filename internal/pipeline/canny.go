package pipeline

import (
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// Fixed edge-detection parameters. The thresholds are on the 8-bit
// intensity scale.
const (
	// EdgeLowThreshold is the default low hysteresis threshold. Gradient
	// magnitudes below it are never edges.
	EdgeLowThreshold = 50

	// EdgeHighThreshold is the default high hysteresis threshold. Gradient
	// magnitudes above it are always edges.
	EdgeHighThreshold = 150

	// smoothingRadius yields a 5x5 Gaussian kernel, the fixed smoothing
	// applied before gradient computation. Edge detectors are noise
	// sensitive; unsmoothed input produces excessive spurious contours.
	smoothingRadius = 2.0
)

// EdgeMap performs Canny-style edge detection, producing a binary
// 1-channel buffer where edge pixels are 255 and everything else is 0.
//
// The stages, each feeding the next:
//
//  1. Grayscale conversion (BT.601 luminance)
//  2. 5x5 Gaussian smoothing
//  3. Sobel gradients: magnitude = sqrt(Gx² + Gy²), direction = atan2(Gy, Gx)
//  4. Non-maximum suppression: keep only local maxima along the gradient
//     direction, thinning edges to one pixel
//  5. Hysteresis thresholding: magnitudes above high are strong edges,
//     magnitudes between low and high are kept only when adjacent to a
//     strong edge
//
// A uniform image produces an all-zero edge map. Dimensions always match
// the input; image border pixels are never edges.
func EdgeMap(b *Buffer, low, high int) *Buffer {
	smoothed := Smooth(Grayscale(b))
	width, height := b.Width, b.Height

	// Normalized float intensities for the gradient stages.
	plane := make([][]float64, height)
	for y := 0; y < height; y++ {
		plane[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			plane[y][x] = float64(smoothed.At(x, y, 0)) / 255.0
		}
	}

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)

		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += plane[py][px] * sobelX[ky+1][kx+1]
					gy += plane[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression.
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			if (angle >= -math.Pi/8 && angle < math.Pi/8) || (angle >= 7*math.Pi/8 || angle < -7*math.Pi/8) {
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			} else if (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8) {
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			} else if (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8) {
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			} else {
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}

	// Double threshold with edge tracking by hysteresis.
	out := &Buffer{
		Width:    width,
		Height:   height,
		Channels: GrayChannels,
		Pix:      make([]uint8, width*height),
	}
	lowThresh := float64(low) / 255.0
	highThresh := float64(high) / 255.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			if val >= highThresh {
				out.setSample(x, y, 0, 255)
			} else if val >= lowThresh {
				hasStrongNeighbor := false
				for ky := -1; ky <= 1 && !hasStrongNeighbor; ky++ {
					for kx := -1; kx <= 1 && !hasStrongNeighbor; kx++ {
						py := clamp(y+ky, 0, height-1)
						px := clamp(x+kx, 0, width-1)
						if suppressed[py][px] >= highThresh {
							hasStrongNeighbor = true
						}
					}
				}
				if hasStrongNeighbor {
					out.setSample(x, y, 0, 255)
				}
			}
		}
	}

	return out
}

// Smooth applies the fixed 5x5 Gaussian blur to a buffer, preserving its
// channel count. This is the noise-suppression stage in front of the edge
// detector, exposed separately so the detection pipeline stays one pure
// step per stage.
func Smooth(b *Buffer) *Buffer {
	return fromImageChannels(blur.Gaussian(b.ToImage(), smoothingRadius), b.Channels)
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution and neighbor scans.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
