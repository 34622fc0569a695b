package nvmelint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/OpenMPDK/nvme-lint/extract"
	"github.com/OpenMPDK/nvme-lint/lint"
	"github.com/OpenMPDK/nvme-lint/logging"
	"github.com/OpenMPDK/nvme-lint/model"
	"github.com/OpenMPDK/nvme-lint/ocr"
	"github.com/OpenMPDK/nvme-lint/poppler"
	"github.com/OpenMPDK/nvme-lint/report"
)

// ocrDPI is the raster resolution for pages recovered through OCR.
const ocrDPI = 150

// Run extracts every table of the document and validates each one. This
// is a terminal operation. The context cancels the extraction
// subprocesses and the worker pools; findings never make Run fail, only
// environment and contract problems do.
func (l *Linter) Run(ctx context.Context) (*Report, error) {
	if l.err != nil {
		return nil, l.err
	}
	if l.filename == "" {
		return nil, errors.New("no filename specified")
	}
	if err := poppler.CheckInstalled(); err != nil {
		return nil, err
	}

	logging.For("lint").Debugw("extracting text elements", "file", l.filename)
	pages, err := poppler.TextElements(ctx, l.filename)
	if err != nil {
		return nil, err
	}
	return l.lintPages(ctx, pages)
}

// pageResult carries what one page contributed.
type pageResult struct {
	captions []extract.Caption
	tables   []*model.Table
}

// lintPages runs the pipeline over already-extracted pages: per-page
// table assembly in a worker pool, figure-sequence tracking, figure
// filtering, cross-page merge, validation, and the optional YAML dump.
func (l *Linter) lintPages(ctx context.Context, pages []poppler.Page) (*Report, error) {
	perPage := l.processPages(ctx, pages)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := extract.NewFilter(l.options.targets, l.options.ignores)

	// The caption sequence spans the whole document, so the tracker walks
	// every caption in page order, after the pool. Findings about filtered
	// figures are suppressed, but the tracker still advances past them.
	tracker := extract.NewTracker()
	var issues []model.Issue
	var chunks []*model.Table
	for _, pr := range perPage {
		for _, c := range pr.captions {
			for _, issue := range tracker.Observe(c) {
				if filter.Skip(issue.FigureNumber) {
					continue
				}
				issues = append(issues, issue)
			}
		}
		chunks = append(chunks, pr.tables...)
	}

	kept := make([]*model.Table, 0, len(chunks))
	for _, t := range chunks {
		if filter.Skip(t.FigureNumber) {
			continue
		}
		kept = append(kept, t)
	}

	tables := extract.MergeTables(kept)
	model.SortTables(tables)

	validation, err := l.validateTables(ctx, tables)
	if err != nil {
		return nil, err
	}
	issues = append(issues, validation...)

	rep := &Report{
		File:   l.filename,
		Pages:  len(pages),
		Tables: tables,
		Issues: report.Sorted(issues),
	}
	logging.For("lint").Infow("document linted",
		"file", l.filename,
		"pages", rep.Pages,
		"tables", len(rep.Tables),
		"findings", len(rep.Issues),
	)

	if l.options.yamlPath != "" {
		if err := l.writeYAML(rep.Tables); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// processPages fans the pages out to a bounded worker pool. Results land
// in a slice indexed by page, so no cross-page ordering is lost to
// scheduling.
func (l *Linter) processPages(ctx context.Context, pages []poppler.Page) []pageResult {
	results := make([]pageResult, len(pages))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < l.options.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = l.processPage(ctx, pages[i])
			}
		}()
	}

feed:
	for i := range pages {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// processPage assembles one page's captions and tables. A failure on one
// page never aborts the document; the page just contributes nothing.
func (l *Linter) processPage(ctx context.Context, page poppler.Page) (result pageResult) {
	defer func() {
		if r := recover(); r != nil {
			logging.For("extract").Errorw("page processing failed",
				"page", page.Number, "panic", r)
			result = pageResult{}
		}
	}()

	if len(page.Texts) == 0 {
		if l.options.ocr {
			result.captions = l.recoverCaptions(ctx, page)
		}
		return result
	}

	result.captions = extract.Captions(page)
	result.tables = extract.Tables(page)
	return result
}

// recoverCaptions rasterizes a page with no text layer and pulls caption
// lines out of the recognized text, so the figure-sequence check stays
// intact across such pages. Their tables are unrecoverable.
func (l *Linter) recoverCaptions(ctx context.Context, page poppler.Page) []extract.Caption {
	log := logging.For("ocr")

	client, err := ocr.New()
	if err != nil {
		log.Warnw("page has no text layer and cannot be recovered",
			"page", page.Number, "error", err)
		return nil
	}
	defer client.Close()

	png, err := poppler.RenderPNG(ctx, l.filename, page.Number, ocrDPI)
	if err != nil {
		log.Warnw("page render failed", "page", page.Number, "error", err)
		return nil
	}
	text, err := client.PageText(png)
	if err != nil {
		log.Warnw("page recognition failed", "page", page.Number, "error", err)
		return nil
	}

	captions := extract.CaptionsFromText(text)
	log.Debugw("captions recovered", "page", page.Number, "captions", len(captions))
	return captions
}

// validateTables fans the tables out to the validation engine. The
// engine is pure, so the workers share one instance and findings merge
// by concatenation in table order. A structural contract violation in
// any table fails the whole run: it means extraction misbuilt the table.
func (l *Linter) validateTables(ctx context.Context, tables []*model.Table) ([]model.Issue, error) {
	engine := lint.New()
	results := make([][]model.Issue, len(tables))
	errs := make([]error, len(tables))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < l.options.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = engine.Validate(tables[i])
			}
		}()
	}

feed:
	for i := range tables {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var issues []model.Issue
	for _, r := range results {
		issues = append(issues, r...)
	}
	return issues, nil
}

// writeYAML dumps the extracted table content for downstream consumers.
func (l *Linter) writeYAML(tables []*model.Table) error {
	f, err := os.Create(l.options.yamlPath)
	if err != nil {
		return fmt.Errorf("create yaml dump: %w", err)
	}
	if err := report.WriteYAML(f, tables); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close yaml dump: %w", err)
	}

	logging.For("lint").Infow("table content written",
		"path", l.options.yamlPath, "tables", len(tables))
	return nil
}
