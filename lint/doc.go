// Package lint implements the table validation engine.
//
// The engine consumes normalized [model.Table] values produced by the
// extraction layer and emits [model.Issue] findings for every convention
// the table breaks: malformed captions and footnotes, singular unit
// headers, malformed or hexadecimal range tokens, rows out of order,
// overlapping or missing positions, and spans that are not a power of two
// or, for command tables, not a whole 32- or 64-bit command field.
//
// # Usage
//
// Validation is a single call:
//
//	engine := lint.New()
//	issues, err := engine.Validate(table)
//	if err != nil {
//	    // the extractor handed over a structurally broken table
//	}
//	for _, issue := range issues {
//	    fmt.Println(issue)
//	}
//
// A non-nil error reports a violated structural contract
// ([model.ErrMalformedTable]), never a finding about document content.
// Content findings are always returned as issues, and the engine always
// runs every check: a table that fails one check still goes through all
// the others, and the returned sequence collects everything found.
//
// # Purity
//
// Validation never mutates the input table, performs no I/O, and keeps no
// state between calls. Validating the same table twice yields the same
// issues, and distinct tables may be validated concurrently from any
// number of goroutines.
package lint
