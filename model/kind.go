package model

import "strings"

// TableKind classifies a table by the layout convention its rows follow.
// The kind decides which whole-table checks apply: bit and byte tables get
// coverage and sum checks, command tables additionally must span a full 32-
// or 64-bit command field, and everything else gets caption, footnote and
// column checks only.
type TableKind int

const (
	OtherTable TableKind = iota
	BitTable
	ByteTable
	CommandTable
)

// String returns the kind's stable machine-readable name.
func (k TableKind) String() string {
	switch k {
	case BitTable:
		return "bit_table"
	case ByteTable:
		return "byte_table"
	case CommandTable:
		return "command_table"
	default:
		return "other"
	}
}

// Classify derives the kind of a table from its caption and normalized
// column headers. Captions naming a command dword mark command tables;
// otherwise the first unit column decides, bits taking precedence over
// bytes when a table declares both.
func Classify(caption string, columns []string) TableKind {
	if strings.Contains(strings.ToLower(caption), "command dword") {
		return CommandTable
	}
	hasBits, hasBytes := false, false
	for _, c := range columns {
		switch unit, ok := UnitForColumn(c); {
		case !ok:
		case unit == UnitBit:
			hasBits = true
		case unit == UnitByte:
			hasBytes = true
		}
	}
	switch {
	case hasBits:
		return BitTable
	case hasBytes:
		return ByteTable
	default:
		return OtherTable
	}
}
