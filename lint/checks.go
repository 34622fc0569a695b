package lint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/OpenMPDK/nvme-lint/model"
)

// captionForm is the caption convention used throughout the source
// documents: the literal "Figure", the figure number, a colon separator
// and a non-empty title.
var captionForm = regexp.MustCompile(`^Figure (\d+): .+$`)

// checkCaption verifies the caption against the "Figure N: Title"
// convention and that N matches the figure number the table was filed
// under. At most one issue per table.
func checkCaption(t *model.Table) *model.Issue {
	m := captionForm.FindStringSubmatch(strings.TrimSpace(t.Caption))
	if m == nil {
		iss := model.NewCaptionIssue(t.FigureNumber, t.Caption)
		return &iss
	}
	if num, err := strconv.Atoi(m[1]); err != nil || num != t.FigureNumber {
		iss := model.NewCaptionIssue(t.FigureNumber, t.Caption)
		return &iss
	}
	return nil
}

// checkFootnote verifies that a trailing note block, when present, leads
// with the literal marker "NOTES". The comparison is case-sensitive; the
// documents consistently set the marker in capitals.
func checkFootnote(t *model.Table) *model.Issue {
	if t.Footnote == "" {
		return nil
	}
	head, _, _ := strings.Cut(t.Footnote, ":")
	if first := strings.TrimSpace(head); first != "NOTES" {
		iss := model.NewFootnoteIssue(t.FigureNumber, first)
		return &iss
	}
	return nil
}

// checkColumns flags unit column headers written in the singular. The
// header still counts as a unit column afterwards, so the rest of the
// pipeline validates the rows under it as usual.
func checkColumns(t *model.Table) []model.Issue {
	var issues []model.Issue
	for _, col := range t.Columns {
		switch col {
		case "bit":
			issues = append(issues, model.NewSingularUnitIssue(t.FigureNumber, model.UnitBit))
		case "byte":
			issues = append(issues, model.NewSingularUnitIssue(t.FigureNumber, model.UnitByte))
		}
	}
	return issues
}
