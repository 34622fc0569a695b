// Package nvmelint checks the tables of NVM Express specification
// documents against the conventions their figures are expected to
// follow: caption form, figure numbering, column headers, bit and byte
// range format, row order, coverage without holes or overlaps, and
// field-width sums.
//
// Basic usage:
//
//	report, err := nvmelint.Open("nvme-base-spec.pdf").Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	for _, issue := range report.Issues {
//	    fmt.Println(issue)
//	}
//
// With options:
//
//	report, err := nvmelint.Open("nvme-base-spec.pdf").
//	    Targets(275, 276).
//	    Workers(4).
//	    YAML("output.yaml").
//	    Run(ctx)
//
// Extraction is delegated to Poppler's command line utilities; pdftohtml
// must be on PATH. The lower-level poppler, extract and lint packages are
// also available for callers that need finer control.
package nvmelint

import (
	"fmt"

	"github.com/OpenMPDK/nvme-lint/model"
)

// Report is the outcome of linting one document.
type Report struct {
	File   string         // the document that was linted
	Pages  int            // pages in the document
	Tables []*model.Table // extracted tables, ordered by figure number
	Issues []model.Issue  // findings, ordered by figure number
}

// Clean reports whether the run produced no findings.
func (r *Report) Clean() bool {
	return len(r.Issues) == 0
}

// Linter lints one document. Each configuration method returns a new
// Linter instance, making configuration chains side-effect free and a
// configured Linter safe to share across goroutines.
type Linter struct {
	filename string
	options  lintOptions

	// Accumulated configuration error (fail-fast in Run)
	err error
}

// Open prepares a Linter for the given document. Nothing is read until a
// terminal operation like Run is called.
//
// Example:
//
//	report, err := nvmelint.Open("nvme-base-spec.pdf").Run(ctx)
func Open(filename string) *Linter {
	return &Linter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// clone creates a copy of the Linter with a deep copy of options, so a
// chain never mutates the instance it was called on.
func (l *Linter) clone() *Linter {
	return &Linter{
		filename: l.filename,
		options:  l.options.clone(),
		err:      l.err,
	}
}

// ============================================================================
// Configuration Methods (return new Linter instance)
// ============================================================================

// Targets restricts validation to the given figure numbers. Multiple
// calls are cumulative. Without targets, every extracted figure is
// validated.
//
// Example:
//
//	report, err := nvmelint.Open("spec.pdf").Targets(275, 276).Run(ctx)
func (l *Linter) Targets(figures ...int) *Linter {
	newLint := l.clone()
	newLint.options.targets = append(newLint.options.targets, figures...)
	return newLint
}

// Ignore excludes the given figure numbers from validation. Multiple
// calls are cumulative. Ignored figures win over targeted ones.
//
// Example:
//
//	report, err := nvmelint.Open("spec.pdf").Ignore(9, 10).Run(ctx)
func (l *Linter) Ignore(figures ...int) *Linter {
	newLint := l.clone()
	newLint.options.ignores = append(newLint.options.ignores, figures...)
	return newLint
}

// Workers sets how many pages and tables are processed concurrently.
// The default is 10.
func (l *Linter) Workers(n int) *Linter {
	newLint := l.clone()
	if n < 1 {
		newLint.err = fmt.Errorf("workers must be at least 1, got %d", n)
		return newLint
	}
	newLint.options.workers = n
	return newLint
}

// YAML additionally dumps the extracted table content to the given file
// when the run completes.
func (l *Linter) YAML(path string) *Linter {
	newLint := l.clone()
	newLint.options.yamlPath = path
	return newLint
}

// OCR enables caption recovery on pages without a text layer. It needs
// pdftoppm on PATH and a binary built with the "ocr" tag; without those,
// such pages are skipped with a logged warning.
func (l *Linter) OCR() *Linter {
	newLint := l.clone()
	newLint.options.ocr = true
	return newLint
}
