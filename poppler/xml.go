package poppler

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Page holds the positioned text of one document page. Coordinates are in
// the pdftohtml pixel space with the origin at the top-left corner, so a
// larger Top is lower on the page.
type Page struct {
	Number int
	Width  int
	Height int
	Texts  []Text
}

// Text is a single positioned text element.
type Text struct {
	Left   int
	Top    int
	Width  int
	Height int
	Bold   bool
	Value  string
}

// cleaner folds compatibility forms (ligatures, non-breaking spaces) into
// their plain equivalents and strips invisible format runes such as soft
// hyphens, which PDFs scatter through extracted text.
var cleaner = transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Cf)))

// ParseXML reads the XML emitted by pdftohtml and returns one Page per
// document page. The parser is deliberately tolerant: pdftohtml output is
// not always well-formed, so the stream is read as markup soup and only
// the page and text elements are interpreted.
func ParseXML(r io.Reader) ([]Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var pages []Page
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "page" {
			pages = append(pages, parsePage(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return pages, nil
}

func parsePage(node *html.Node) Page {
	page := Page{
		Number: intAttr(node, "number"),
		Width:  intAttr(node, "width"),
		Height: intAttr(node, "height"),
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "text" {
			if t, ok := parseText(n); ok {
				page.Texts = append(page.Texts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return page
}

func parseText(node *html.Node) (Text, bool) {
	value, err := Normalize(textContent(node))
	if err != nil || value == "" {
		return Text{}, false
	}
	return Text{
		Left:   intAttr(node, "left"),
		Top:    intAttr(node, "top"),
		Width:  intAttr(node, "width"),
		Height: intAttr(node, "height"),
		Bold:   hasElement(node, "b"),
		Value:  value,
	}, true
}

// Normalize cleans one extracted string: compatibility normalization,
// format-rune removal, and whitespace trimming.
func Normalize(s string) (string, error) {
	out, _, err := transform.String(cleaner, s)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// textContent concatenates every text node under n, in document order.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// hasElement reports whether an element with the given name appears
// anywhere under n.
func hasElement(n *html.Node, name string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == name {
			return true
		}
		if hasElement(c, name) {
			return true
		}
	}
	return false
}

func intAttr(n *html.Node, name string) int {
	for _, attr := range n.Attr {
		if attr.Key == name {
			// pdftohtml occasionally emits fractional coordinates
			if v, err := strconv.Atoi(attr.Val); err == nil {
				return v
			}
			if f, err := strconv.ParseFloat(attr.Val, 64); err == nil {
				return int(f)
			}
			return 0
		}
	}
	return 0
}
