package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/OpenMPDK/nvme-lint/poppler"
)

// Caption is one figure caption found on a page.
type Caption struct {
	Number int    // parsed figure number, 0 when the caption is malformed
	Text   string // full caption text, joined across split elements
	Top    int    // vertical position of the caption line
}

var (
	captionStart = regexp.MustCompile(`^Figure\b`)
	captionFull  = regexp.MustCompile(`^Figure (\d+): .+$`)
)

// sameLine is the vertical slack between elements pdftohtml split out of
// one visual line.
const sameLine = 3

// Captions finds the figure captions on a page. Captions are set in bold
// and start with the literal "Figure"; pdftohtml often splits one caption
// into several elements at style boundaries, so trailing bold elements on
// the caption's line are glued back together.
func Captions(page poppler.Page) []Caption {
	var captions []Caption
	for i := 0; i < len(page.Texts); i++ {
		t := page.Texts[i]
		if !t.Bold || !captionStart.MatchString(t.Value) {
			continue
		}
		text := t.Value
		j := i + 1
		for ; j < len(page.Texts); j++ {
			next := page.Texts[j]
			if !next.Bold || abs(next.Top-t.Top) > sameLine {
				break
			}
			// A fragment ending in a dash was split mid-word.
			if strings.HasSuffix(text, "-") {
				text += next.Value
			} else {
				text += " " + next.Value
			}
		}
		i = j - 1
		captions = append(captions, Caption{
			Number: captionNumber(text),
			Text:   text,
			Top:    t.Top,
		})
	}
	return captions
}

// CaptionsFromText finds figure captions in flat page text, for pages
// recovered through OCR where position and style are gone. Only the
// caption lines survive such pages; their tables are unrecoverable, so
// the captions keep the figure sequence intact and nothing more.
func CaptionsFromText(text string) []Caption {
	var captions []Caption
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !captionStart.MatchString(line) {
			continue
		}
		captions = append(captions, Caption{
			Number: captionNumber(line),
			Text:   line,
		})
	}
	return captions
}

// captionNumber parses the figure number out of a well-formed caption,
// returning 0 for anything else. Malformed captions still produce a
// table; the validation engine reports them.
func captionNumber(text string) int {
	m := captionFull.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
