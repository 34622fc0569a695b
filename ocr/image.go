package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// minWidth is the narrowest page render the engine handles reliably;
// anything narrower is upscaled before recognition.
const minWidth = 1200

// upscale resizes a PNG by an integer factor so it is at least min pixels
// wide, preserving the aspect ratio. Images already wide enough pass
// through unchanged.
func upscale(pngData []byte, min int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dx() >= min {
		return pngData, nil
	}

	factor := (min + b.Dx() - 1) / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
