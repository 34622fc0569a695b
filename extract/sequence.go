package extract

import "github.com/OpenMPDK/nvme-lint/model"

// Tracker follows the figure numbering across a document and reports the
// numbers the caption sequence skips. Figures must be observed in document
// order. A caption that repeats the current number is a table continuing
// on a later page, and a caption jumping backward is a stray reference;
// neither is a finding, and neither moves the tracker.
type Tracker struct {
	current int
}

// NewTracker returns a tracker expecting the document to start at
// figure 1.
func NewTracker() *Tracker {
	return &Tracker{current: 1}
}

// Observe advances the tracker past one caption and returns one issue per
// figure number skipped since the previous caption. Captions whose number
// could not be parsed are ignored here; the validation engine flags them
// on the table itself.
func (tr *Tracker) Observe(c Caption) []model.Issue {
	if c.Number <= tr.current {
		return nil
	}
	var issues []model.Issue
	for missing := tr.current + 1; missing < c.Number; missing++ {
		issues = append(issues, model.NewCaptionIssue(missing, ""))
	}
	tr.current = c.Number
	return issues
}

// Filter decides which figures are handed to the validation engine. A
// non-empty target list restricts validation to exactly those figures;
// the ignore list always wins.
type Filter struct {
	targets map[int]bool
	ignores map[int]bool
}

// NewFilter builds a filter from explicit figure number lists. Both lists
// may be empty, in which case nothing is filtered.
func NewFilter(targets, ignores []int) *Filter {
	f := &Filter{
		targets: make(map[int]bool, len(targets)),
		ignores: make(map[int]bool, len(ignores)),
	}
	for _, fig := range targets {
		f.targets[fig] = true
	}
	for _, fig := range ignores {
		f.ignores[fig] = true
	}
	return f
}

// Skip reports whether the figure should not be validated.
func (f *Filter) Skip(fig int) bool {
	if len(f.targets) > 0 && !f.targets[fig] {
		return true
	}
	return f.ignores[fig]
}
