package extract

import (
	"strings"

	"github.com/OpenMPDK/nvme-lint/model"
	"github.com/OpenMPDK/nvme-lint/poppler"
)

// Region groups the positioned text belonging to one figure on one page.
type Region struct {
	Caption Caption
	Texts   []poppler.Text
	Page    int
}

// Regions splits one page into per-figure regions. A figure's region runs
// from below its caption down to the next caption; text above the first
// caption belongs to no figure and is dropped.
func Regions(page poppler.Page) []Region {
	captions := Captions(page)
	if len(captions) == 0 {
		return nil
	}

	regions := make([]Region, len(captions))
	for i, c := range captions {
		regions[i] = Region{Caption: c, Page: page.Number}
		lower := -1
		if i+1 < len(captions) {
			lower = captions[i+1].Top
		}
		for _, t := range page.Texts {
			if t.Top > c.Top && (lower < 0 || t.Top < lower) {
				regions[i].Texts = append(regions[i].Texts, t)
			}
		}
	}
	return regions
}

// Tables extracts every recognizable table on one page.
func Tables(page poppler.Page) []*model.Table {
	var tables []*model.Table
	for _, region := range Regions(page) {
		if t, ok := Assemble(region); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Assemble builds a table from one region. The first grid row supplies
// the column headers, lowercased with any value-style header collapsed to
// "value"; wrapped lines with nothing under the first column fold into
// the row above; a trailing NOTES row becomes the footnote. Returns false
// when the region holds no recognizable table.
func Assemble(region Region) (*model.Table, bool) {
	grid := Grid(region.Texts)
	if len(grid) < 2 {
		return nil, false
	}

	columns, idx := headings(grid[0])
	if len(columns) < minGridCols {
		return nil, false
	}

	rows := make([]model.Row, 0, len(grid)-1)
	for _, line := range grid[1:] {
		row := model.NewRow()
		for k, col := range columns {
			if cell := strings.TrimSpace(line[idx[k]]); cell != "" {
				row.Cells[col] = cell
			}
		}
		if len(row.Cells) == 0 {
			continue
		}
		if row.Cells[columns[0]] == "" && len(rows) > 0 {
			foldInto(rows[len(rows)-1], row)
			continue
		}
		rows = append(rows, row)
	}

	var footnote string
	if n := len(rows); n > 0 && isNotesRow(rows[n-1], columns[0]) {
		footnote = joinRow(rows[n-1], columns)
		rows = rows[:n-1]
	}

	if len(rows) == 0 {
		return nil, false
	}

	table := &model.Table{
		FigureNumber: region.Caption.Number,
		Caption:      region.Caption.Text,
		Columns:      columns,
		Rows:         rows,
		Footnote:     footnote,
		Kind:         model.Classify(region.Caption.Text, columns),
		Page:         region.Page,
	}
	return table, true
}

// MergeTables folds continuation chunks into their first chunk, keyed by
// caption text, preserving first-appearance order; callers hand chunks
// over in page order. Byte-layout tables are then flipped into the
// canonical high-to-low row order the validation engine expects, since
// byte tables run low-to-high down the page by convention.
func MergeTables(tables []*model.Table) []*model.Table {
	merged := make([]*model.Table, 0, len(tables))
	byCaption := make(map[string]*model.Table, len(tables))
	for _, t := range tables {
		if first, ok := byCaption[t.Caption]; ok && t.Caption != "" {
			first.Merge(t)
			continue
		}
		byCaption[t.Caption] = t
		merged = append(merged, t)
	}

	for _, t := range merged {
		if bytesOnly(t.Columns) {
			reverseRows(t.Rows)
		}
	}
	return merged
}

// headings normalizes the header row: lowercased, inner whitespace
// collapsed, headers naming a value collapsed to "value". Columns with a
// blank header carry no data and are dropped; idx maps each kept header
// back to its grid column.
func headings(cells []string) (columns []string, idx []int) {
	for i, cell := range cells {
		h := strings.Join(strings.Fields(strings.ToLower(cell)), " ")
		if h == "" {
			continue
		}
		if strings.Contains(h, "value") {
			h = "value"
		}
		columns = append(columns, h)
		idx = append(idx, i)
	}
	return columns, idx
}

// foldInto appends a wrapped continuation line to the row above it.
func foldInto(prev, cont model.Row) {
	for col, cell := range cont.Cells {
		if prev.Cells[col] != "" {
			prev.Cells[col] += " "
		}
		prev.Cells[col] += cell
	}
}

// isNotesRow reports whether the row opens a trailing note block.
func isNotesRow(row model.Row, firstColumn string) bool {
	first := row.Cell(firstColumn)
	return strings.Contains(first, "NOTE") || strings.Contains(first, "Note")
}

func joinRow(row model.Row, columns []string) string {
	var parts []string
	for _, col := range columns {
		if cell := row.Cell(col); cell != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}

func bytesOnly(columns []string) bool {
	hasBytes := false
	for _, c := range columns {
		unit, ok := model.UnitForColumn(c)
		if !ok {
			continue
		}
		if unit == model.UnitBit {
			return false
		}
		hasBytes = true
	}
	return hasBytes
}

func reverseRows(rows []model.Row) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
