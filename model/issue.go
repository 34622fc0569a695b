package model

import (
	"fmt"
	"strconv"
)

// Severity grades a validation finding. The engine itself never fails on
// document content; severity exists so downstream consumers can decide what
// to treat as fatal.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the severity in log form.
func (s Severity) String() string {
	if s == SeverityError {
		return "ERROR"
	}
	return "WARNING"
}

// IssueKind is the closed set of findings the validation engine can emit.
type IssueKind int

const (
	KindCaptionFormat IssueKind = iota
	KindFootnoteFormat
	KindSingularUnit
	KindWrongRangeFormat
	KindWrongValueType
	KindWrongRowOrder
	KindWrongRangeOrder
	KindOverlap
	KindHole
	KindSumNotPowerOfTwo
	KindCommandBitSumMismatch
)

var issueKindNames = map[IssueKind]string{
	KindCaptionFormat:         "caption_format",
	KindFootnoteFormat:        "footnote_format",
	KindSingularUnit:          "singular_unit",
	KindWrongRangeFormat:      "wrong_range_format",
	KindWrongValueType:        "wrong_value_type",
	KindWrongRowOrder:         "wrong_row_order",
	KindWrongRangeOrder:       "wrong_range_order",
	KindOverlap:               "overlap",
	KindHole:                  "hole",
	KindSumNotPowerOfTwo:      "sum_not_power_of_two",
	KindCommandBitSumMismatch: "command_bit_sum_mismatch",
}

// String returns the kind's stable machine-readable name.
func (k IssueKind) String() string {
	if name, ok := issueKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Issue is one validation finding, tied to the figure it was found in.
// Issues are immutable values; build them with the per-kind constructors
// below so each kind carries exactly the payload its message needs.
type Issue struct {
	FigureNumber int
	Severity     Severity
	Kind         IssueKind
	Message      string
	Value        string // the offending raw value, empty when the finding has none
}

// String renders the issue as a single log line.
func (i Issue) String() string {
	return fmt.Sprintf("Figure %d: %s", i.FigureNumber, i.Message)
}

// ============================================================================
// Issue constructors
// ============================================================================

// NewCaptionIssue reports a caption that does not follow the
// "Figure <number>: <title>" convention, or a figure number missing from
// the document's caption sequence.
func NewCaptionIssue(fig int, caption string) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindCaptionFormat,
		Message:      fmt.Sprintf("encountered a problem with the caption to Figure %d", fig),
		Value:        caption,
	}
}

// NewFootnoteIssue reports a trailing notes row whose leading token is not
// the literal "NOTES".
func NewFootnoteIssue(fig int, got string) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindFootnoteFormat,
		Message:      fmt.Sprintf("'%s' should be 'NOTES'", got),
		Value:        got,
	}
}

// NewSingularUnitIssue reports a unit column header written in the singular.
func NewSingularUnitIssue(fig int, unit Unit) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindSingularUnit,
		Message:      fmt.Sprintf("'%s' instead of '%s'", unit.Singular(), unit),
		Value:        unit.Singular(),
	}
}

// NewRangeFormatIssue reports a range token in a shape the convention does
// not allow, such as "7 to 0".
func NewRangeFormatIssue(fig int, unit Unit, token string) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindWrongRangeFormat,
		Message:      fmt.Sprintf("%s range is of the wrong format: %s", unit, token),
		Value:        token,
	}
}

// NewReversedRangeIssue reports a range token whose bounds are swapped,
// such as "0:31". It shares a kind with [NewRangeFormatIssue]; only the
// message differs.
func NewReversedRangeIssue(fig int, unit Unit, token string) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindWrongRangeFormat,
		Message:      fmt.Sprintf("%s range is in wrong order: %s", unit, token),
		Value:        token,
	}
}

// NewValueTypeIssue reports a range token written in hexadecimal notation.
func NewValueTypeIssue(fig int, unit Unit, token string) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindWrongValueType,
		Message:      fmt.Sprintf("%s value is of the wrong type: %s", unit, token),
		Value:        token,
	}
}

// NewRowOrderIssue reports consecutive rows that do not descend.
func NewRowOrderIssue(fig int, unit Unit) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindWrongRowOrder,
		Message:      fmt.Sprintf("%s are in wrong order", unit),
	}
}

// NewRangeOrderIssue reports a row whose range reaches back above the
// previous row's low bound.
func NewRangeOrderIssue(fig int, unit Unit, value string) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindWrongRangeOrder,
		Message:      fmt.Sprintf("%s range out of order with previous row: %s", unit, value),
		Value:        value,
	}
}

// NewOverlapIssue reports a position addressed by more than one row. The
// position is the highest one the two rows share.
func NewOverlapIssue(fig int, unit Unit, position uint32) Issue {
	val := strconv.FormatUint(uint64(position), 10)
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindOverlap,
		Message:      fmt.Sprintf("overlap of %s: %s", unit, val),
		Value:        val,
	}
}

// NewHoleIssue reports a position between two consecutive rows that no row
// addresses. The position is the highest missing one.
func NewHoleIssue(fig int, unit Unit, position uint32) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindHole,
		Message:      fmt.Sprintf("hole in %s", unit),
		Value:        strconv.FormatUint(uint64(position), 10),
	}
}

// NewSumIssue reports a table whose covered span is not a power of two.
func NewSumIssue(fig int, unit Unit) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindSumNotPowerOfTwo,
		Message:      fmt.Sprintf("sum of %s is not a power of 2", unit),
	}
}

// NewCommandSumIssue reports a command table whose bits do not span an
// entire 32- or 64-bit command field.
func NewCommandSumIssue(fig int, unit Unit) Issue {
	return Issue{
		FigureNumber: fig,
		Severity:     SeverityWarning,
		Kind:         KindCommandBitSumMismatch,
		Message:      fmt.Sprintf("%s don't sum up to 32 or 64", unit),
	}
}
