// Package report renders run output: a YAML dump of extracted table
// content for downstream consumers, and deterministic renderings of the
// findings for terminals and machines.
package report

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpenMPDK/nvme-lint/model"
)

// Table is the YAML projection of one extracted table.
type Table struct {
	Figure   int      `yaml:"figure"`
	Title    string   `yaml:"title"`
	Group    string   `yaml:"group,omitempty"`
	Kind     string   `yaml:"kind"`
	Page     int      `yaml:"page,omitempty"`
	Headings []string `yaml:"headings,flow"`
	Rows     []Row    `yaml:"rows"`
}

// Row carries one row's fields in the shape downstream code generation
// consumes: unit cells reduced to field widths, descriptive cells split
// into name, brief and verbose parts, and value cells in 0x notation.
// Cells under any other heading keep their heading as the key.
type Row struct {
	Bits    int               `yaml:"bits,omitempty"`
	Bytes   int               `yaml:"bytes,omitempty"`
	Value   string            `yaml:"value,omitempty"`
	Name    string            `yaml:"name,omitempty"`
	Brief   string            `yaml:"brief,omitempty"`
	Verbose string            `yaml:"verbose,omitempty"`
	Extra   map[string]string `yaml:",inline"`
}

// groupSep splits "Group – Title" captions; the documents set it with an
// en dash.
const groupSep = " – "

var (
	// nameBriefVerbose matches "Brief (NAME): verbose text" description
	// cells; briefVerbose matches the variant without the short name.
	nameBriefVerbose = regexp.MustCompile(`^(.+?)\((.+?)\):(.+)$`)
	briefVerbose     = regexp.MustCompile(`^(.+?):(.+)$`)

	decimalRun = regexp.MustCompile(`\d+`)
	hexToken   = regexp.MustCompile(`^[0-9a-fA-F]+h$`)
)

// WriteYAML dumps the projection of every table, in the given order.
func WriteYAML(w io.Writer, tables []*model.Table) error {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		out = append(out, Project(t))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		enc.Close()
		return fmt.Errorf("encode tables: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode tables: %w", err)
	}
	return nil
}

// Project converts one table into its YAML shape. Rows missing the
// table's anchor column are dropped, and unit tables are dumped low to
// high, the order generated structs declare their fields in.
func Project(t *model.Table) Table {
	out := Table{
		Figure:   t.FigureNumber,
		Kind:     t.Kind.String(),
		Page:     t.Page,
		Headings: t.Columns,
	}
	out.Title = t.Title()
	if i := strings.LastIndex(out.Title, groupSep); i >= 0 {
		out.Group = identifier(out.Title[:i])
		out.Title = out.Title[i+len(groupSep):]
	}

	anchor, unit, isUnit := anchorColumn(t.Columns)
	for _, row := range t.Rows {
		if r, ok := projectRow(row, t.Columns, anchor, unit, isUnit); ok {
			out.Rows = append(out.Rows, r)
		}
	}
	if isUnit {
		reverseRows(out.Rows)
	}
	return out
}

// anchorColumn picks the column every row must carry to appear in the
// dump: bits over bytes over value, mirroring the layout conventions.
func anchorColumn(columns []string) (anchor string, unit model.Unit, isUnit bool) {
	var valueCol string
	for _, col := range columns {
		if u, ok := model.UnitForColumn(col); ok {
			if u == model.UnitBit {
				return col, model.UnitBit, true
			}
			if anchor == "" {
				anchor, unit, isUnit = col, model.UnitByte, true
			}
		}
		if col == "value" && valueCol == "" {
			valueCol = col
		}
	}
	if anchor == "" && valueCol != "" {
		return valueCol, 0, false
	}
	return anchor, unit, isUnit
}

func projectRow(row model.Row, columns []string, anchor string, unit model.Unit, isUnit bool) (Row, bool) {
	var r Row
	anchored := anchor == ""
	for _, col := range columns {
		cell := strings.TrimSpace(row.Cell(col))
		if cell == "" {
			continue
		}
		switch {
		case isUnit && col == anchor:
			width, ok := spanWidth(cell)
			if !ok {
				return Row{}, false
			}
			if unit == model.UnitBit {
				r.Bits = width
			} else {
				r.Bytes = width
			}
			anchored = true

		case col == "value":
			if strings.Contains(cell, " to ") {
				// Value ranges carry no single value; the dump skips them.
				return Row{}, false
			}
			r.Value = hexValue(cell)
			if col == anchor {
				anchored = true
			}

		default:
			if m := nameBriefVerbose.FindStringSubmatch(flatten(cell)); m != nil {
				r.Brief = strings.TrimSpace(m[1])
				r.Name = strings.ToLower(strings.TrimSpace(m[2]))
				r.Verbose = strings.TrimSpace(m[3])
			} else if m := briefVerbose.FindStringSubmatch(flatten(cell)); m != nil {
				r.Brief = strings.TrimSpace(m[1])
				r.Verbose = strings.TrimSpace(m[2])
			} else {
				if r.Extra == nil {
					r.Extra = make(map[string]string)
				}
				r.Extra[col] = cell
			}
		}
	}
	if !anchored {
		return Row{}, false
	}
	r.Name = rowName(r)
	return r, true
}

// spanWidth reduces a range token to the number of positions it covers.
// The reduction is deliberately lenient: the validation engine already
// reported malformed tokens, so the dump salvages what it can ("0:31"
// and "0 to 31" both span 32) and drops only tokens with no decimal
// bounds at all, hexadecimal ones included.
func spanWidth(token string) (int, bool) {
	if hexToken.MatchString(token) || strings.HasPrefix(strings.ToLower(token), "0x") {
		return 0, false
	}
	bounds := decimalRun.FindAllString(token, -1)
	if len(bounds) == 0 {
		return 0, false
	}
	lo, err := strconv.Atoi(bounds[0])
	if err != nil {
		return 0, false
	}
	hi := lo
	for _, b := range bounds[1:] {
		n, err := strconv.Atoi(b)
		if err != nil {
			return 0, false
		}
		if n > hi {
			hi = n
		}
		if n < lo {
			lo = n
		}
	}
	return hi - lo + 1, true
}

// hexValue rewrites the documents' trailing-h notation as 0x. Values
// already in 0x form or not hexadecimal at all pass through.
func hexValue(cell string) string {
	if hexToken.MatchString(cell) {
		return "0x" + strings.TrimSuffix(cell, "h")
	}
	return cell
}

// rowName fills the name key code generation expects when the row does
// not spell one out.
func rowName(r Row) string {
	switch {
	case r.Name != "":
		return r.Name
	case r.Extra["description"] == "Reserved":
		return "rsvd"
	case r.Brief != "":
		return identifier(r.Brief)
	case r.Extra["definition"] != "":
		return identifier(r.Extra["definition"])
	case r.Extra["description"] != "":
		return identifier(r.Extra["description"])
	}
	return ""
}

func identifier(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// flatten joins the lines of a wrapped cell so the description regexes
// see one string.
func flatten(cell string) string {
	return strings.Join(strings.Fields(cell), " ")
}

func reverseRows(rows []Row) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
