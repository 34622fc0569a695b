//go:build ocr

// Package ocr recovers the text of pages that carry no text layer, which
// happens with scanned specification drafts. It wraps the Tesseract
// engine via gosseract and requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// The package only compiles in with the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag a stub is compiled instead and New reports
// [ErrOCRNotEnabled], so callers degrade gracefully.
package ocr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ErrOCRNotEnabled is the sentinel the stub build reports. It is declared
// in both builds so callers can test for it either way; this
// implementation never returns it.
var ErrOCRNotEnabled = errors.New("ocr support not compiled in, rebuild with -tags ocr")

// Client recognizes text in rendered page images. It is not safe for
// concurrent use; give each worker its own Client.
type Client struct {
	tess *gosseract.Client
}

// New returns a Client configured for English specification text. Close
// it to release the engine.
func New() (*Client, error) {
	tess := gosseract.NewClient()
	if err := tess.SetLanguage("eng"); err != nil {
		tess.Close()
		return nil, fmt.Errorf("configure tesseract: %w", err)
	}
	return &Client{tess: tess}, nil
}

// Close releases the engine. Safe to call more than once.
func (c *Client) Close() error {
	if c.tess == nil {
		return nil
	}
	tess := c.tess
	c.tess = nil
	return tess.Close()
}

// PageText recognizes the text of one page rendered as PNG. Narrow
// renders are upscaled first so caption-sized type stays legible to the
// engine.
func (c *Client) PageText(pngData []byte) (string, error) {
	scaled, err := upscale(pngData, minWidth)
	if err != nil {
		return "", fmt.Errorf("prepare page image: %w", err)
	}
	if err := c.tess.SetImageFromBytes(scaled); err != nil {
		return "", fmt.Errorf("set page image: %w", err)
	}
	text, err := c.tess.Text()
	if err != nil {
		return "", fmt.Errorf("recognize page: %w", err)
	}
	return strings.TrimSpace(text), nil
}
