package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")

	// 1x2 framebuffer, bottom row red, top row blue (GL order is bottom-up)
	pixels := []byte{
		255, 0, 0, 255, // bottom
		0, 0, 255, 255, // top
	}

	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	// The top of the PNG should be the top of the framebuffer (blue)
	_, _, b, _ := img.At(0, 0).RGBA()
	if b>>8 != 255 {
		t.Errorf("top pixel blue channel: got %d, want 255", b>>8)
	}
	r, _, _, _ := img.At(0, 1).RGBA()
	if r>>8 != 255 {
		t.Errorf("bottom pixel red channel: got %d, want 255", r>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")

	if _, err := sc.CaptureFromPixels(make([]byte, 3), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
