package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/OpenMPDK/nvme-lint/model"
)

// Render writes the findings as human-readable lines, one per issue,
// ordered by figure number. Output is deterministic for a given set of
// findings, so runs can be diffed.
func Render(w io.Writer, issues []model.Issue) error {
	for _, issue := range Sorted(issues) {
		if _, err := fmt.Fprintf(w, "%s %s\n", issue.Severity, issue); err != nil {
			return fmt.Errorf("render findings: %w", err)
		}
	}
	return nil
}

// jsonIssue is the machine-readable shape of one finding.
type jsonIssue struct {
	Figure   int    `json:"figure"`
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Value    string `json:"value,omitempty"`
}

// RenderJSON writes the findings as a JSON array in the order Render
// prints them. An empty run renders as [], not null.
func RenderJSON(w io.Writer, issues []model.Issue) error {
	out := make([]jsonIssue, 0, len(issues))
	for _, issue := range Sorted(issues) {
		out = append(out, jsonIssue{
			Figure:   issue.FigureNumber,
			Severity: issue.Severity.String(),
			Kind:     issue.Kind.String(),
			Message:  issue.Message,
			Value:    issue.Value,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("render findings: %w", err)
	}
	return nil
}

// Sorted returns a copy of the findings ordered by figure number. The sort
// is stable, so findings within one figure keep the order the engine
// emitted them in.
func Sorted(issues []model.Issue) []model.Issue {
	out := make([]model.Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FigureNumber < out[j].FigureNumber
	})
	return out
}
