package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedTable reports a Table that violates its own structural
// contract, for example a row holding a cell under a column header that the
// table does not declare. It signals a defect in the extraction layer, not
// a finding about document content, so it surfaces as an error rather than
// an Issue.
var ErrMalformedTable = errors.New("malformed table")

// Table represents one figure extracted from a specification document: a
// caption, ordered column headers, data rows, and an optional trailing
// footnote.
//
// Column headers are lowercased and whitespace-normalized by the extractor;
// cell text is kept raw. Row order mirrors the document top to bottom and
// is semantically meaningful: by convention, the first row covers the
// highest bit or byte positions.
type Table struct {
	FigureNumber int    // figure number from the caption, 0 if none was recognized
	Caption      string // full caption line, e.g. "Figure 12: Identify Command"
	Columns      []string
	Rows         []Row
	Footnote     string // trailing NOTES row joined into one line, empty if absent
	Kind         TableKind
	Page         int // 1-based page the figure starts on
}

// Row is a single data row, keyed by the table's column headers.
type Row struct {
	Cells map[string]string
}

// NewRow returns an empty row ready for cell assignment.
func NewRow() Row {
	return Row{Cells: make(map[string]string)}
}

// Cell returns the raw text under the given column header, or "" when the
// row has no such cell.
func (r Row) Cell(column string) string {
	return r.Cells[column]
}

// Verify checks the table's structural contract: every cell key of every
// row must name a declared column. A violation returns an error wrapping
// [ErrMalformedTable].
func (t *Table) Verify() error {
	declared := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		declared[c] = true
	}
	for i, row := range t.Rows {
		for key := range row.Cells {
			if !declared[key] {
				return fmt.Errorf("%w: figure %d row %d holds cell %q outside declared columns",
					ErrMalformedTable, t.FigureNumber, i, key)
			}
		}
	}
	return nil
}

// Column reports whether the table declares the given header.
func (t *Table) Column(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Title returns the descriptive part of the caption, lowercased, with the
// "Figure N:" prefix stripped. It falls back to the whole caption when the
// prefix is absent.
func (t *Table) Title() string {
	if _, rest, ok := strings.Cut(t.Caption, ":"); ok && strings.HasPrefix(t.Caption, "Figure ") {
		return strings.ToLower(strings.TrimSpace(rest))
	}
	return strings.ToLower(strings.TrimSpace(t.Caption))
}

// Merge appends the rows of a continuation chunk to t. Tables that span
// page breaks arrive as one chunk per page under the same caption; the
// first chunk supplies the columns and the rest contribute rows only.
func (t *Table) Merge(cont *Table) {
	t.Rows = append(t.Rows, cont.Rows...)
	if cont.Footnote != "" {
		t.Footnote = cont.Footnote
	}
}

// SortTables orders tables by figure number, then by starting page for the
// rare unnumbered captions that share figure number 0.
func SortTables(tables []*Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		if tables[i].FigureNumber != tables[j].FigureNumber {
			return tables[i].FigureNumber < tables[j].FigureNumber
		}
		return tables[i].Page < tables[j].Page
	})
}
