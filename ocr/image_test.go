package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG renders a white page with one black block, encoded as PNG.
func testPNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < width/2; x++ {
		for y := 10; y < height/2; y++ {
			img.Set(x, y, color.Black)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestUpscaleNarrowImage(t *testing.T) {
	out, err := upscale(testPNG(100, 60), 1200)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode upscaled png: %v", err)
	}
	if got := img.Bounds().Dx(); got != 1200 {
		t.Errorf("width = %d, want 1200", got)
	}
	if got := img.Bounds().Dy(); got != 720 {
		t.Errorf("height = %d, want 720", got)
	}
}

func TestUpscaleUsesIntegerFactor(t *testing.T) {
	out, err := upscale(testPNG(250, 100), 1200)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode upscaled png: %v", err)
	}
	// 250 wide needs factor 5 to clear 1200.
	if got := img.Bounds().Dx(); got != 1250 {
		t.Errorf("width = %d, want 1250", got)
	}
	if got := img.Bounds().Dy(); got != 500 {
		t.Errorf("height = %d, want 500", got)
	}
}

func TestUpscaleWideImagePassesThrough(t *testing.T) {
	in := testPNG(1600, 200)
	out, err := upscale(in, 1200)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Error("wide image should pass through unchanged")
	}
}

func TestUpscaleRejectsJunk(t *testing.T) {
	if _, err := upscale([]byte("not a png"), 1200); err == nil {
		t.Fatal("expected error for non-PNG input")
	}
}
