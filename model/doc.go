// Package model provides the intermediate representation (IR) for tables
// extracted from NVMe specification documents.
//
// This package defines the data structures shared between the extraction
// layer and the validation engine. Extraction produces them, validation
// consumes them, making these types the primary API for working with
// specification content.
//
// # Tables
//
// The [Table] type represents one extracted figure: its caption, column
// headers, data rows, and an optional trailing footnote. Row order mirrors
// the document and is semantically meaningful: top-to-bottom corresponds to
// high-to-low bit or byte positions.
//
//	table := &model.Table{
//	    FigureNumber: 12,
//	    Caption:      "Figure 12: Identify Command",
//	    Columns:      []string{"bits", "description"},
//	    Rows:         rows,
//	}
//	table.Kind = model.Classify(table.Caption, table.Columns)
//
// # Issues
//
// Validation findings are [Issue] values: immutable records carrying the
// figure number, a severity, a closed [IssueKind], the rendered message,
// and the offending raw value where one exists. Issues are built through
// the per-kind constructors ([NewOverlapIssue], [NewHoleIssue], ...) so
// that each kind carries exactly the payload it needs.
//
// # Ranges
//
// A [Range] is an inclusive [Low, High] interval over bit or byte
// positions. Ranges are produced only by the validation engine's range
// parser; a malformed range token never becomes a Range, it becomes an
// Issue instead.
package model
