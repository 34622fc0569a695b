package model

import (
	"errors"
	"testing"
)

// ============================================================================
// Table Tests
// ============================================================================

func TestTableVerify(t *testing.T) {
	table := &Table{
		FigureNumber: 12,
		Columns:      []string{"bits", "description"},
		Rows: []Row{
			{Cells: map[string]string{"bits": "31:16", "description": "Field A"}},
			{Cells: map[string]string{"bits": "15:0"}},
		},
	}
	if err := table.Verify(); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}

	table.Rows = append(table.Rows, Row{Cells: map[string]string{"value": "1h"}})
	err := table.Verify()
	if err == nil {
		t.Fatal("Verify() = nil, want error for cell outside declared columns")
	}
	if !errors.Is(err, ErrMalformedTable) {
		t.Errorf("Verify() = %v, want ErrMalformedTable", err)
	}
}

func TestTableTitle(t *testing.T) {
	tests := []struct {
		caption string
		want    string
	}{
		{"Figure 12: Identify Command", "identify command"},
		{"Figure 310: Common Command Format, Command Dword 0", "common command format, command dword 0"},
		{"Fig 12 - Identify", "fig 12 - identify"},
		{"", ""},
	}
	for _, tt := range tests {
		table := &Table{Caption: tt.caption}
		if got := table.Title(); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.caption, got, tt.want)
		}
	}
}

func TestTableColumn(t *testing.T) {
	table := &Table{Columns: []string{"bits", "description"}}
	if !table.Column("bits") {
		t.Error("Column(\"bits\") = false, want true")
	}
	if table.Column("value") {
		t.Error("Column(\"value\") = true, want false")
	}
}

func TestTableMerge(t *testing.T) {
	first := &Table{
		FigureNumber: 7,
		Columns:      []string{"bytes", "description"},
		Rows:         []Row{{Cells: map[string]string{"bytes": "3:0"}}},
	}
	cont := &Table{
		FigureNumber: 7,
		Columns:      []string{"bytes", "description"},
		Rows:         []Row{{Cells: map[string]string{"bytes": "7:4"}}},
		Footnote:     "NOTES: 1: Optional.",
	}

	first.Merge(cont)

	if len(first.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(first.Rows))
	}
	if got := first.Rows[1].Cell("bytes"); got != "7:4" {
		t.Errorf("continuation row = %q, want \"7:4\"", got)
	}
	if first.Footnote != "NOTES: 1: Optional." {
		t.Errorf("Footnote = %q, want footnote carried over", first.Footnote)
	}
}

func TestSortTables(t *testing.T) {
	tables := []*Table{
		{FigureNumber: 14, Page: 3},
		{FigureNumber: 12, Page: 2},
		{FigureNumber: 0, Page: 5},
		{FigureNumber: 0, Page: 1},
	}
	SortTables(tables)

	wantPages := []int{1, 5, 2, 3}
	for i, want := range wantPages {
		if tables[i].Page != want {
			t.Errorf("tables[%d].Page = %d, want %d", i, tables[i].Page, want)
		}
	}
}

// ============================================================================
// Classification Tests
// ============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		columns []string
		want    TableKind
	}{
		{"bit table", "Figure 12: Identify Command", []string{"bits", "description"}, BitTable},
		{"singular bit header", "Figure 12: Identify Command", []string{"bit", "description"}, BitTable},
		{"byte table", "Figure 13: Identify Data Structure", []string{"bytes", "description"}, ByteTable},
		{"command dword", "Figure 310: Common Command Format, Command Dword 0", []string{"bits", "description"}, CommandTable},
		{"command dword case", "Figure 311: COMMAND DWORD 11", []string{"bits", "description"}, CommandTable},
		{"value table", "Figure 14: Status Codes", []string{"value", "description"}, OtherTable},
		{"bits beat bytes", "Figure 15: Mixed", []string{"bytes", "bits"}, BitTable},
		{"no unit columns", "Figure 16: Terminology", []string{"term", "definition"}, OtherTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.caption, tt.columns); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitForColumn(t *testing.T) {
	tests := []struct {
		header string
		unit   Unit
		ok     bool
	}{
		{"bits", UnitBit, true},
		{"bit", UnitBit, true},
		{"bytes", UnitByte, true},
		{"byte", UnitByte, true},
		{"description", 0, false},
		{"value", 0, false},
	}
	for _, tt := range tests {
		unit, ok := UnitForColumn(tt.header)
		if ok != tt.ok {
			t.Errorf("UnitForColumn(%q) ok = %v, want %v", tt.header, ok, tt.ok)
		}
		if ok && unit != tt.unit {
			t.Errorf("UnitForColumn(%q) = %v, want %v", tt.header, unit, tt.unit)
		}
	}
}

// ============================================================================
// Range Tests
// ============================================================================

func TestRangeSize(t *testing.T) {
	tests := []struct {
		r    Range
		want uint64
	}{
		{Range{High: 15, Low: 8}, 8},
		{Range{High: 7, Low: 7}, 1},
		{Range{High: 31, Low: 0}, 32},
	}
	for _, tt := range tests {
		if got := tt.r.Size(); got != tt.want {
			t.Errorf("Size(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestRangeString(t *testing.T) {
	if got := (Range{High: 15, Low: 8}).String(); got != "15:8" {
		t.Errorf("String() = %q, want \"15:8\"", got)
	}
	if got := (Range{High: 7, Low: 7}).String(); got != "7" {
		t.Errorf("String() = %q, want \"7\"", got)
	}
}

// ============================================================================
// Issue Tests
// ============================================================================

func TestIssueConstructors(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		kind  IssueKind
		want  string
	}{
		{"caption", NewCaptionIssue(12, "Fig 12 - Identify"), KindCaptionFormat, "encountered a problem with the caption to Figure 12"},
		{"footnote", NewFootnoteIssue(12, "Note"), KindFootnoteFormat, "'Note' should be 'NOTES'"},
		{"singular unit", NewSingularUnitIssue(12, UnitBit), KindSingularUnit, "'bit' instead of 'bits'"},
		{"range format", NewRangeFormatIssue(12, UnitBit, "7 to 0"), KindWrongRangeFormat, "bits range is of the wrong format: 7 to 0"},
		{"reversed range", NewReversedRangeIssue(12, UnitBit, "0:31"), KindWrongRangeFormat, "bits range is in wrong order: 0:31"},
		{"value type", NewValueTypeIssue(12, UnitBit, "10h"), KindWrongValueType, "bits value is of the wrong type: 10h"},
		{"row order", NewRowOrderIssue(12, UnitByte), KindWrongRowOrder, "bytes are in wrong order"},
		{"range order", NewRangeOrderIssue(12, UnitBit, "17:16"), KindWrongRangeOrder, "bits range out of order with previous row: 17:16"},
		{"overlap", NewOverlapIssue(12, UnitBit, 15), KindOverlap, "overlap of bits: 15"},
		{"hole", NewHoleIssue(12, UnitBit, 16), KindHole, "hole in bits"},
		{"sum", NewSumIssue(12, UnitBit), KindSumNotPowerOfTwo, "sum of bits is not a power of 2"},
		{"command sum", NewCommandSumIssue(12, UnitBit), KindCommandBitSumMismatch, "bits don't sum up to 32 or 64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.issue.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.issue.Kind, tt.kind)
			}
			if tt.issue.Message != tt.want {
				t.Errorf("Message = %q, want %q", tt.issue.Message, tt.want)
			}
			if tt.issue.FigureNumber != 12 {
				t.Errorf("FigureNumber = %d, want 12", tt.issue.FigureNumber)
			}
			if tt.issue.Severity != SeverityWarning {
				t.Errorf("Severity = %v, want WARNING", tt.issue.Severity)
			}
		})
	}
}

func TestIssueString(t *testing.T) {
	issue := NewRowOrderIssue(247, UnitBit)
	want := "Figure 247: bits are in wrong order"
	if got := issue.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIssueValues(t *testing.T) {
	if got := NewOverlapIssue(12, UnitBit, 15).Value; got != "15" {
		t.Errorf("overlap Value = %q, want \"15\"", got)
	}
	if got := NewHoleIssue(12, UnitBit, 16).Value; got != "16" {
		t.Errorf("hole Value = %q, want \"16\"", got)
	}
	if got := NewRowOrderIssue(12, UnitBit).Value; got != "" {
		t.Errorf("row order Value = %q, want empty", got)
	}
}

func TestIssueKindString(t *testing.T) {
	tests := []struct {
		kind IssueKind
		want string
	}{
		{KindCaptionFormat, "caption_format"},
		{KindOverlap, "overlap"},
		{KindCommandBitSumMismatch, "command_bit_sum_mismatch"},
		{IssueKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if got := SeverityWarning.String(); got != "WARNING" {
		t.Errorf("String() = %q, want \"WARNING\"", got)
	}
	if got := SeverityError.String(); got != "ERROR" {
		t.Errorf("String() = %q, want \"ERROR\"", got)
	}
}
