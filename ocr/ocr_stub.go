//go:build !ocr

// Package ocr recovers the text of pages that carry no text layer. This
// stub compiles when the "ocr" build tag is absent: New reports
// [ErrOCRNotEnabled] and callers degrade gracefully. Rebuild with
//
//	go build -tags ocr
//
// and Tesseract installed to compile the real engine in.
package ocr

import "errors"

// ErrOCRNotEnabled reports that the binary was built without the "ocr"
// tag.
var ErrOCRNotEnabled = errors.New("ocr support not compiled in, rebuild with -tags ocr")

// Client recognizes text in rendered page images. The stub has no engine
// behind it.
type Client struct{}

// New reports ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op, so deferred cleanup is safe on either build.
func (c *Client) Close() error {
	return nil
}

// PageText reports ErrOCRNotEnabled.
func (c *Client) PageText([]byte) (string, error) {
	return "", ErrOCRNotEnabled
}
