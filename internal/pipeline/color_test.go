package pipeline

import "testing"

func TestGrayscale(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"pure red", 255, 0, 0, 76},
		{"pure green", 0, 255, 0, 150},
		{"pure blue", 0, 0, 255, 29},
		{"mid gray", 128, 128, 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := Grayscale(solidBuffer(4, 3, tt.r, tt.g, tt.b))

			if gray.Channels != GrayChannels {
				t.Fatalf("channels: got %d, want 1", gray.Channels)
			}
			if gray.Width != 4 || gray.Height != 3 {
				t.Fatalf("dimensions: got %dx%d, want 4x3", gray.Width, gray.Height)
			}
			if got := gray.At(0, 0, 0); got != tt.want {
				t.Errorf("luminance of (%d,%d,%d): got %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestGrayscale_Idempotent(t *testing.T) {
	b := solidBuffer(8, 8, 200, 100, 50)

	once := Grayscale(b)
	twice := Grayscale(once)

	if twice.Channels != GrayChannels {
		t.Fatalf("channels after double conversion: got %d, want 1", twice.Channels)
	}
	if !buffersEqual(once, twice) {
		t.Error("applying Grayscale twice differs from applying it once")
	}
}

func TestGrayscale_ReturnsCopy(t *testing.T) {
	gray := Grayscale(solidBuffer(2, 2, 10, 10, 10))
	again := Grayscale(gray)

	again.setSample(0, 0, 0, 99)
	if gray.At(0, 0, 0) == 99 {
		t.Error("Grayscale of a gray buffer must return an independent copy")
	}
}

func TestGrayscale_InputUnchanged(t *testing.T) {
	b := solidBuffer(4, 4, 12, 34, 56)
	snapshot := b.Clone()

	Grayscale(b)

	if !buffersEqual(b, snapshot) {
		t.Error("Grayscale mutated its input")
	}
}
