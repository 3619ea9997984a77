// Package pipeline implements the image analysis pipeline: a fixed set of
// classical (non-learned) transformation and detection functions operating
// on a decoded pixel buffer.
//
// All operations are pure functions over an explicit Buffer input. No
// operation mutates its argument; transforms return a new Buffer, and the
// annotating operations (grid overlay, object detection) draw on a private
// clone of the source. There is no state retained between calls, so the
// package is safe for concurrent use as long as callers do not share a
// mutable Buffer across goroutines.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Samples are stored row-major
// and interleaved, in RGB order for 3-channel buffers.
//
// # Operations
//
//   - Grayscale: 3-channel to 1-channel luminance conversion (BT.601)
//   - Rotate: clockwise rotation by 90, 180 or 270 degrees
//   - Mirror: horizontal flip
//   - OverlayGrid: evenly spaced row/column grid lines on a copy
//   - EdgeMap: Canny-style edge detection producing a binary edge buffer
//   - DetectObjects: blur, edge detection, contour extraction and
//     area-filtered bounding-box annotation
//   - Describe: descriptive metadata (dimensions, channels, sample counts)
//
// # Error Handling
//
// The transforms are total over well-formed buffers and define no error
// taxonomy of their own. Two documented policies substitute for errors: an
// unrecognized rotation angle is an identity copy, and an image without
// qualifying contours yields an object count of zero. Construction is where
// validation happens: New and FromImage reject malformed dimensions so the
// rest of the pipeline never sees an invalid buffer.
package pipeline
