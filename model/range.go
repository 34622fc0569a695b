package model

import "strconv"

// Unit names the kind of position a table column addresses.
type Unit int

const (
	UnitBit Unit = iota
	UnitByte
)

// String returns the canonical plural column header for the unit.
func (u Unit) String() string {
	if u == UnitByte {
		return "bytes"
	}
	return "bits"
}

// Singular returns the singular form that column validation flags.
func (u Unit) Singular() string {
	if u == UnitByte {
		return "byte"
	}
	return "bit"
}

// UnitForColumn maps a normalized column header to its unit. Singular
// headers still map, so that a table whose header misses the plural form is
// flagged once and validated anyway.
func UnitForColumn(header string) (Unit, bool) {
	switch header {
	case "bit", "bits":
		return UnitBit, true
	case "byte", "bytes":
		return UnitByte, true
	}
	return 0, false
}

// Range is an inclusive interval of bit or byte positions. High carries the
// upper bound, so a Range is valid only when High >= Low; the parser never
// produces a reversed one.
type Range struct {
	High uint32
	Low  uint32
	Unit Unit
}

// Size returns the number of positions the range covers.
func (r Range) Size() uint64 {
	return uint64(r.High) - uint64(r.Low) + 1
}

// String renders the range the way it appears in a table cell: "15:8" for
// an interval, "7" for a single position.
func (r Range) String() string {
	if r.High == r.Low {
		return strconv.FormatUint(uint64(r.High), 10)
	}
	return strconv.FormatUint(uint64(r.High), 10) + ":" + strconv.FormatUint(uint64(r.Low), 10)
}
