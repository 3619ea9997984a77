package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"imagelab/internal/config"
)

func TestHealthz(t *testing.T) {
	srv := newTestServer()

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
}

func TestUnknownOperation(t *testing.T) {
	srv := newTestServer()

	rec := doUpload(t, srv, "sharpen", solidImage(10, 10), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Error("error body missing \"error\" field")
	}
}

func TestMissingImageField(t *testing.T) {
	srv := newTestServer()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	_ = w.WriteField("rows", "4")
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/grid", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestUndecodableImage(t *testing.T) {
	srv := newTestServer()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", "junk.bin")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	_, _ = fw.Write([]byte("definitely not pixels"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/grayscale", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

// Test helpers shared by the handler tests.

func newTestServer() *Server {
	cfg := &config.Config{
		Addr:        ":0",
		MaxUploadMB: 16,
		GridRows:    4,
		GridCols:    4,
		MinArea:     500,
		LogLevel:    "info",
	}
	return New(cfg, zerolog.Nop())
}

// solidImage builds a uniform light-gray test image.
func solidImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	return img
}

// rectImage builds a white image with one filled dark rectangle.
func rectImage(width, height, x1, y1, x2, y2 int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if x >= x1 && x <= x2 && y >= y1 && y <= y2 {
				c = color.RGBA{R: 20, G: 20, B: 20, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// doUpload posts an image to /api/{op} with optional form parameters and
// returns the recorded response.
func doUpload(t *testing.T, srv *Server, op string, img image.Image, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", "test.png")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if err := png.Encode(fw, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("multipart close failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/"+op, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}
