package lint

import (
	"strings"

	"github.com/OpenMPDK/nvme-lint/model"
)

// Engine validates extracted tables against the conventions of the source
// documents. The zero value is ready to use; New exists for symmetry with
// the rest of the module.
type Engine struct{}

// New returns a validation engine.
func New() *Engine {
	return &Engine{}
}

// Validate runs every check over one table and returns all findings in a
// stable order: caption, footnote, column headers, then the full range
// pipeline for each bit-bearing column followed by each byte-bearing
// column. No check short-circuits another.
//
// The returned error is non-nil only when the table violates its
// structural contract (see [model.Table.Verify]); it never reflects
// document content.
func (e *Engine) Validate(t *model.Table) ([]model.Issue, error) {
	if err := t.Verify(); err != nil {
		return nil, err
	}

	var issues []model.Issue
	if iss := checkCaption(t); iss != nil {
		issues = append(issues, *iss)
	}
	if iss := checkFootnote(t); iss != nil {
		issues = append(issues, *iss)
	}
	issues = append(issues, checkColumns(t)...)

	for _, want := range []model.Unit{model.UnitBit, model.UnitByte} {
		for _, col := range t.Columns {
			unit, ok := model.UnitForColumn(col)
			if !ok || unit != want {
				continue
			}
			ranges, parseIssues := parseColumn(t, col, unit)
			issues = append(issues, parseIssues...)
			issues = append(issues, checkOrder(t.FigureNumber, unit, ranges)...)
			issues = append(issues, checkCoverage(t.FigureNumber, unit, ranges)...)
			issues = append(issues, checkSum(t.FigureNumber, unit, t.Kind, ranges)...)
		}
	}
	return issues, nil
}

// parseColumn parses every token under one unit column. Empty cells carry
// no token and are skipped; rows whose token fails to parse contribute an
// issue instead of a range, and the remaining checks run over whatever
// parsed.
func parseColumn(t *model.Table, column string, unit model.Unit) ([]model.Range, []model.Issue) {
	var ranges []model.Range
	var issues []model.Issue
	for _, row := range t.Rows {
		token := strings.TrimSpace(row.Cell(column))
		if token == "" {
			continue
		}
		r, iss := ParseRange(t.FigureNumber, unit, token)
		if iss != nil {
			issues = append(issues, *iss)
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges, issues
}
