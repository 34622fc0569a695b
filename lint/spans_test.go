package lint

import (
	"testing"

	"github.com/OpenMPDK/nvme-lint/model"
)

// mkRanges turns {high, low} pairs into a range sequence.
func mkRanges(unit model.Unit, pairs ...[2]uint32) []model.Range {
	ranges := make([]model.Range, 0, len(pairs))
	for _, p := range pairs {
		ranges = append(ranges, model.Range{High: p[0], Low: p[1], Unit: unit})
	}
	return ranges
}

func kindCount(issues []model.Issue, kind model.IssueKind) int {
	n := 0
	for _, iss := range issues {
		if iss.Kind == kind {
			n++
		}
	}
	return n
}

func TestCheckOrderDescending(t *testing.T) {
	ranges := mkRanges(model.UnitBit, [2]uint32{31, 16}, [2]uint32{15, 8}, [2]uint32{7, 0})
	if issues := checkOrder(12, model.UnitBit, ranges); len(issues) != 0 {
		t.Errorf("checkOrder() = %v, want none", issues)
	}
}

func TestCheckOrderAscending(t *testing.T) {
	ranges := mkRanges(model.UnitBit, [2]uint32{15, 0}, [2]uint32{31, 16})
	issues := checkOrder(12, model.UnitBit, ranges)
	if kindCount(issues, model.KindWrongRowOrder) != 1 {
		t.Errorf("WRONG_ROW_ORDER count = %d, want 1", kindCount(issues, model.KindWrongRowOrder))
	}
}

func TestCheckOrderAscendingReportedOnce(t *testing.T) {
	// Fully ascending table: one finding, not one per row pair.
	ranges := mkRanges(model.UnitBit,
		[2]uint32{7, 0}, [2]uint32{15, 8}, [2]uint32{23, 16}, [2]uint32{31, 24})
	issues := checkOrder(12, model.UnitBit, ranges)
	if kindCount(issues, model.KindWrongRowOrder) != 1 {
		t.Errorf("WRONG_ROW_ORDER count = %d, want 1", kindCount(issues, model.KindWrongRowOrder))
	}
}

func TestCheckOrderRangeReachesBack(t *testing.T) {
	// Second row reaches back above the first row's low bound.
	ranges := mkRanges(model.UnitBit, [2]uint32{31, 8}, [2]uint32{15, 0})
	issues := checkOrder(12, model.UnitBit, ranges)
	if kindCount(issues, model.KindWrongRowOrder) != 0 {
		t.Errorf("WRONG_ROW_ORDER count = %d, want 0", kindCount(issues, model.KindWrongRowOrder))
	}
	if kindCount(issues, model.KindWrongRangeOrder) != 1 {
		t.Fatalf("WRONG_RANGE_ORDER count = %d, want 1", kindCount(issues, model.KindWrongRangeOrder))
	}
	if issues[0].Value != "15:0" {
		t.Errorf("Value = %q, want \"15:0\"", issues[0].Value)
	}
}

func TestCheckOrderBoundaryEquality(t *testing.T) {
	// A shared boundary is coverage's finding, not an order violation.
	ranges := mkRanges(model.UnitBit, [2]uint32{31, 15}, [2]uint32{15, 0})
	if issues := checkOrder(12, model.UnitBit, ranges); len(issues) != 0 {
		t.Errorf("checkOrder() = %v, want none", issues)
	}
}

func TestCheckOrderShortSequences(t *testing.T) {
	if issues := checkOrder(12, model.UnitBit, nil); len(issues) != 0 {
		t.Errorf("checkOrder(nil) = %v, want none", issues)
	}
	single := mkRanges(model.UnitBit, [2]uint32{31, 0})
	if issues := checkOrder(12, model.UnitBit, single); len(issues) != 0 {
		t.Errorf("checkOrder(single) = %v, want none", issues)
	}
}

func TestCheckCoverageContiguous(t *testing.T) {
	ranges := mkRanges(model.UnitBit, [2]uint32{31, 16}, [2]uint32{15, 0})
	if issues := checkCoverage(12, model.UnitBit, ranges); len(issues) != 0 {
		t.Errorf("checkCoverage() = %v, want none", issues)
	}
}

func TestCheckCoverageOverlap(t *testing.T) {
	// Bit 15 is addressed by both rows.
	ranges := mkRanges(model.UnitBit, [2]uint32{31, 15}, [2]uint32{15, 0})
	issues := checkCoverage(12, model.UnitBit, ranges)
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	if issues[0].Kind != model.KindOverlap {
		t.Errorf("kind = %v, want OVERLAP", issues[0].Kind)
	}
	if issues[0].Value != "15" {
		t.Errorf("Value = %q, want \"15\"", issues[0].Value)
	}
}

func TestCheckCoverageHole(t *testing.T) {
	// Bit 16 is addressed by neither row.
	ranges := mkRanges(model.UnitBit, [2]uint32{31, 17}, [2]uint32{15, 0})
	issues := checkCoverage(12, model.UnitBit, ranges)
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	if issues[0].Kind != model.KindHole {
		t.Errorf("kind = %v, want HOLE", issues[0].Kind)
	}
	if issues[0].Value != "16" {
		t.Errorf("Value = %q, want \"16\"", issues[0].Value)
	}
}

func TestCheckCoverageSinglePositions(t *testing.T) {
	ranges := mkRanges(model.UnitBit, [2]uint32{7, 7}, [2]uint32{6, 6}, [2]uint32{5, 0})
	if issues := checkCoverage(12, model.UnitBit, ranges); len(issues) != 0 {
		t.Errorf("checkCoverage() = %v, want none", issues)
	}
}

func TestCheckCoverageNeedsTwoRanges(t *testing.T) {
	single := mkRanges(model.UnitBit, [2]uint32{31, 0})
	if issues := checkCoverage(12, model.UnitBit, single); len(issues) != 0 {
		t.Errorf("checkCoverage(single) = %v, want none", issues)
	}
	if issues := checkCoverage(12, model.UnitBit, nil); len(issues) != 0 {
		t.Errorf("checkCoverage(nil) = %v, want none", issues)
	}
}

func TestCheckSumPowerOfTwo(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]uint32
		want  int
	}{
		{"32-bit span", [][2]uint32{{31, 16}, {15, 0}}, 0},
		{"single position", [][2]uint32{{7, 7}}, 0},
		{"single 12-bit row", [][2]uint32{{11, 0}}, 1},
		{"48-bit span", [][2]uint32{{47, 32}, {31, 0}}, 1},
		{"span with hole still measured by extremes", [][2]uint32{{31, 17}, {15, 0}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := mkRanges(model.UnitBit, tt.pairs...)
			issues := checkSum(12, model.UnitBit, model.BitTable, ranges)
			if got := kindCount(issues, model.KindSumNotPowerOfTwo); got != tt.want {
				t.Errorf("SUM_NOT_POWER_OF_TWO count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckSumCommandTable(t *testing.T) {
	// A 48-bit command table fails the power-of-two check and the
	// command-field check together.
	ranges := mkRanges(model.UnitBit, [2]uint32{47, 32}, [2]uint32{31, 0})
	issues := checkSum(12, model.UnitBit, model.CommandTable, ranges)
	if kindCount(issues, model.KindSumNotPowerOfTwo) != 1 {
		t.Errorf("SUM_NOT_POWER_OF_TWO count = %d, want 1", kindCount(issues, model.KindSumNotPowerOfTwo))
	}
	if kindCount(issues, model.KindCommandBitSumMismatch) != 1 {
		t.Errorf("COMMAND_BIT_SUM_MISMATCH count = %d, want 1", kindCount(issues, model.KindCommandBitSumMismatch))
	}
}

func TestCheckSumCommandTableValidSpans(t *testing.T) {
	for _, pairs := range [][][2]uint32{
		{{31, 16}, {15, 0}},
		{{63, 32}, {31, 0}},
	} {
		ranges := mkRanges(model.UnitBit, pairs...)
		if issues := checkSum(12, model.UnitBit, model.CommandTable, ranges); len(issues) != 0 {
			t.Errorf("checkSum(%v) = %v, want none", pairs, issues)
		}
	}
}

func TestCheckSumCommandTableBytesExempt(t *testing.T) {
	// The 32/64 rule binds bit columns only.
	ranges := mkRanges(model.UnitByte, [2]uint32{15, 0})
	if issues := checkSum(12, model.UnitByte, model.CommandTable, ranges); len(issues) != 0 {
		t.Errorf("checkSum() = %v, want none", issues)
	}
}

func TestCheckSumEmpty(t *testing.T) {
	if issues := checkSum(12, model.UnitBit, model.CommandTable, nil); len(issues) != 0 {
		t.Errorf("checkSum(nil) = %v, want none", issues)
	}
}
