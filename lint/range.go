package lint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/OpenMPDK/nvme-lint/model"
)

// wordRange matches the "N to M" notation some tables use for value ranges.
// It is never valid in a bits or bytes column.
var wordRange = regexp.MustCompile(`^\d+\s+to\s+\d+$`)

// ParseRange parses one raw token from a bits or bytes cell. Parsing is
// total: every token yields either a range or exactly one issue, never
// both and never a failure.
//
// The canonical forms are "H:L" with H >= L and a bare position "N",
// both unsigned decimal. Anything hexadecimal ("0x1F", "1Fh", bare hex
// digits) is reported as a wrong value type; every other shape, including
// "N to M", a reversed "L:H" and unknown separators, is reported as a
// wrong range format.
func ParseRange(fig int, unit model.Unit, token string) (model.Range, *model.Issue) {
	tok := strings.TrimSpace(token)

	if wordRange.MatchString(tok) {
		iss := model.NewRangeFormatIssue(fig, unit, tok)
		return model.Range{}, &iss
	}

	if highPart, lowPart, ok := strings.Cut(tok, ":"); ok {
		high, iss := parseBound(fig, unit, strings.TrimSpace(highPart), tok)
		if iss != nil {
			return model.Range{}, iss
		}
		low, iss := parseBound(fig, unit, strings.TrimSpace(lowPart), tok)
		if iss != nil {
			return model.Range{}, iss
		}
		if high < low {
			iss := model.NewReversedRangeIssue(fig, unit, tok)
			return model.Range{}, &iss
		}
		return model.Range{High: high, Low: low, Unit: unit}, nil
	}

	pos, iss := parseBound(fig, unit, tok, tok)
	if iss != nil {
		return model.Range{}, iss
	}
	return model.Range{High: pos, Low: pos, Unit: unit}, nil
}

// parseBound parses one side of a range token. The full token is carried
// along so issues report the cell as written, not the fragment.
func parseBound(fig int, unit model.Unit, part, token string) (uint32, *model.Issue) {
	if isHex(part) {
		iss := model.NewValueTypeIssue(fig, unit, token)
		return 0, &iss
	}
	n, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		iss := model.NewRangeFormatIssue(fig, unit, token)
		return 0, &iss
	}
	return uint32(n), nil
}

// isHex reports whether s is written in hexadecimal notation: an 0x
// prefix, a trailing h on hex digits, or bare digits outside 0-9.
func isHex(s string) bool {
	ls := strings.ToLower(s)
	switch {
	case strings.HasPrefix(ls, "0x"):
		return len(ls) > 2 && allHexDigits(ls[2:])
	case strings.HasSuffix(ls, "h"):
		return len(ls) > 1 && allHexDigits(ls[:len(ls)-1])
	default:
		return allHexDigits(ls) && strings.ContainsAny(ls, "abcdef")
	}
}

func allHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
