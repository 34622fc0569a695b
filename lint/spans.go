package lint

import (
	"math/bits"

	"github.com/OpenMPDK/nvme-lint/model"
)

// checkOrder walks consecutive ranges in document order and verifies two
// properties. Row order: high bounds must be strictly descending; a table
// that ascends anywhere is reported once. Range order: a row must not
// reach back above the previous row's low bound; every row that does is
// reported with its value, since each names a distinct offender.
func checkOrder(fig int, unit model.Unit, ranges []model.Range) []model.Issue {
	var issues []model.Issue
	ascending := false
	for i := 1; i < len(ranges); i++ {
		if ranges[i].High >= ranges[i-1].High {
			ascending = true
		}
	}
	if ascending {
		issues = append(issues, model.NewRowOrderIssue(fig, unit))
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i].High > ranges[i-1].Low {
			issues = append(issues, model.NewRangeOrderIssue(fig, unit, ranges[i].String()))
		}
	}
	return issues
}

// checkCoverage verifies that consecutive ranges tile the span with no
// gaps: each range's low bound must sit exactly one above the next
// range's high bound. A shared position is an overlap, reported with the
// highest position the two rows share; a skipped position is a hole,
// reported with the highest position neither row addresses. Needs at
// least two ranges to say anything.
func checkCoverage(fig int, unit model.Unit, ranges []model.Range) []model.Issue {
	var issues []model.Issue
	for i := 1; i < len(ranges); i++ {
		prevLow, curHigh := ranges[i-1].Low, ranges[i].High
		switch {
		case prevLow == curHigh+1:
			// contiguous
		case prevLow <= curHigh:
			issues = append(issues, model.NewOverlapIssue(fig, unit, curHigh))
		default:
			issues = append(issues, model.NewHoleIssue(fig, unit, prevLow-1))
		}
	}
	return issues
}

// checkSum verifies the declared span size, computed from the high and
// low extremes across all rows even when earlier checks found the rows
// inconsistent. The span must be a power of two, and command tables must
// additionally span a whole 32- or 64-bit command field.
func checkSum(fig int, unit model.Unit, kind model.TableKind, ranges []model.Range) []model.Issue {
	if len(ranges) == 0 {
		return nil
	}
	high, low := ranges[0].High, ranges[0].Low
	for _, r := range ranges[1:] {
		if r.High > high {
			high = r.High
		}
		if r.Low < low {
			low = r.Low
		}
	}
	total := uint64(high) - uint64(low) + 1

	var issues []model.Issue
	if bits.OnesCount64(total) != 1 {
		issues = append(issues, model.NewSumIssue(fig, unit))
	}
	if kind == model.CommandTable && unit == model.UnitBit && total != 32 && total != 64 {
		issues = append(issues, model.NewCommandSumIssue(fig, unit))
	}
	return issues
}
