package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"imagelab/internal/codec"
	"imagelab/internal/pipeline"
)

// ImageResult is the common shape of responses that carry a processed
// image: dimensions plus the image itself as base64 PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Channels    int    `json:"channels"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RotateResult carries a rotated image and the applied angle.
type RotateResult struct {
	ImageResult
	Angle int `json:"angle"`
}

// GridResult carries a grid-overlaid image and the grid dimensions.
type GridResult struct {
	ImageResult
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// EdgesResult carries a binary edge map and the thresholds used.
type EdgesResult struct {
	ImageResult
	ThresholdLow  int `json:"threshold_low"`
	ThresholdHigh int `json:"threshold_high"`
}

// DetectResult carries the annotated image plus the detected objects.
type DetectResult struct {
	ImageResult
	Count   int            `json:"count"`
	Boxes   []pipeline.Box `json:"boxes"`
	MinArea int            `json:"min_area"`
}

// httpError is an operation failure with an associated HTTP status.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func badRequest(format string, args ...interface{}) error {
	return &httpError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// errUnknownOp distinguishes an unroutable operation from a bad parameter.
var errUnknownOp = &httpError{status: http.StatusNotFound, msg: "unknown operation"}

// handleProcess decodes the uploaded image, dispatches the requested
// operation, and writes the JSON result.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload: "+err.Error())
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, `missing "image" form field`)
		return
	}
	defer file.Close()

	buf, format, err := codec.Decode(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	op := r.PathValue("op")
	result, err := s.execute(op, buf, r)
	if err != nil {
		var he *httpError
		if errors.As(err, &he) {
			writeError(w, he.status, he.msg)
			return
		}
		s.log.Error().Err(err).Str("op", op).Str("format", format).Msg("operation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// execute dispatches one pipeline operation.
//
// Each branch parses its parameters (falling back to configured defaults),
// calls the pipeline, and wraps the result for JSON rendering. The
// uploaded buffer is never mutated; every operation works on copies.
func (s *Server) execute(op string, buf *pipeline.Buffer, r *http.Request) (interface{}, error) {
	switch op {
	case "grayscale":
		return imageResult(pipeline.Grayscale(buf))

	case "rotate":
		// Angles outside {90, 180, 270} return the image unchanged; that
		// identity policy belongs to the pipeline, so it is not second-
		// guessed here.
		angle, err := formInt(r, "angle", 90)
		if err != nil {
			return nil, err
		}
		res, err := imageResult(pipeline.Rotate(buf, angle))
		if err != nil {
			return nil, err
		}
		return RotateResult{ImageResult: res, Angle: angle}, nil

	case "mirror":
		return imageResult(pipeline.Mirror(buf))

	case "grid":
		rows, err := formInt(r, "rows", s.cfg.GridRows)
		if err != nil {
			return nil, err
		}
		cols, err := formInt(r, "cols", s.cfg.GridCols)
		if err != nil {
			return nil, err
		}
		if rows < 1 || cols < 1 {
			return nil, badRequest("rows and cols must be >= 1, got %dx%d", rows, cols)
		}
		res, err := imageResult(pipeline.OverlayGrid(buf, rows, cols, r.FormValue("color")))
		if err != nil {
			return nil, err
		}
		return GridResult{ImageResult: res, Rows: rows, Cols: cols}, nil

	case "edges":
		low, err := formInt(r, "low", pipeline.EdgeLowThreshold)
		if err != nil {
			return nil, err
		}
		high, err := formInt(r, "high", pipeline.EdgeHighThreshold)
		if err != nil {
			return nil, err
		}
		res, err := imageResult(pipeline.EdgeMap(buf, low, high))
		if err != nil {
			return nil, err
		}
		return EdgesResult{ImageResult: res, ThresholdLow: low, ThresholdHigh: high}, nil

	case "detect":
		minArea, err := formInt(r, "min_area", s.cfg.MinArea)
		if err != nil {
			return nil, err
		}
		det := pipeline.DetectObjects(buf, minArea)
		res, err := imageResult(det.Annotated)
		if err != nil {
			return nil, err
		}
		return DetectResult{ImageResult: res, Count: det.Count, Boxes: det.Boxes, MinArea: minArea}, nil

	case "properties":
		return pipeline.Describe(buf), nil

	default:
		return nil, errUnknownOp
	}
}

// imageResult wraps a pipeline buffer as a JSON-renderable image response.
func imageResult(b *pipeline.Buffer) (ImageResult, error) {
	encoded, err := codec.EncodeBase64PNG(b)
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{
		Width:       b.Width,
		Height:      b.Height,
		Channels:    b.Channels,
		ImageBase64: encoded,
		MimeType:    codec.MimePNG,
	}, nil
}

// formInt reads an integer form or query value, falling back to def when
// the value is absent. A value that is present but not an integer is a
// client error, never a silent fallback.
func formInt(r *http.Request, name string, def int) (int, error) {
	raw := r.FormValue(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("parameter %q must be an integer, got %q", name, raw)
	}
	return v, nil
}
