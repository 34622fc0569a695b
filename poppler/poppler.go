// Package poppler drives the Poppler command-line utilities that do the
// actual PDF reading: pdftohtml for positioned text extraction and pdftoppm
// for page rasters. Nothing here interprets document content; the package
// turns subprocess output into [Page] values and leaves meaning to the
// extraction layer.
package poppler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNotInstalled reports a missing Poppler utility on PATH.
var ErrNotInstalled = errors.New("poppler utilities not installed")

const (
	pdftohtmlBin = "pdftohtml"
	pdftoppmBin  = "pdftoppm"
)

// CheckInstalled verifies that pdftohtml is available. pdftoppm is only
// needed for the OCR path and is checked when a raster is first requested.
func CheckInstalled() error {
	if _, err := exec.LookPath(pdftohtmlBin); err != nil {
		return fmt.Errorf("%w: %s", ErrNotInstalled, pdftohtmlBin)
	}
	return nil
}

// TextElements extracts every positioned text element of the document,
// one [Page] per document page. Images are skipped at the source; the
// XML arrives on stdout so nothing touches the working directory.
func TextElements(ctx context.Context, file string) ([]Page, error) {
	cmd := exec.CommandContext(ctx, pdftohtmlBin, "-xml", "-stdout", "-i", file)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, runError(pdftohtmlBin, file, err, &stderr)
	}
	pages, err := ParseXML(&stdout)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", pdftohtmlBin, file, err)
	}
	return pages, nil
}

// RenderPNG rasterizes a single page to PNG at the given resolution.
func RenderPNG(ctx context.Context, file string, page, dpi int) ([]byte, error) {
	if _, err := exec.LookPath(pdftoppmBin); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotInstalled, pdftoppmBin)
	}
	cmd := exec.CommandContext(ctx, pdftoppmBin,
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		file,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, runError(pdftoppmBin, file, err, &stderr)
	}
	return stdout.Bytes(), nil
}

func runError(bin, file string, err error, stderr *bytes.Buffer) error {
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s %s: %w: %s", bin, file, err, msg)
	}
	return fmt.Errorf("%s %s: %w", bin, file, err)
}
