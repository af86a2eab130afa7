// Package htmltext extracts plain text from rich-text journal bodies.
// Entries authored in the web editor can carry markup; the engines only ever
// see the text this package produces.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// FromString returns the concatenated text content of the markup, with
// script and style subtrees skipped and whitespace collapsed. Input that is
// not HTML comes back essentially unchanged, so it is safe to apply
// unconditionally at the boundary.
func FromString(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.Join(strings.Fields(s), " ")
	}

	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			case "p", "br", "div", "li":
				b.WriteByte(' ')
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.Join(strings.Fields(b.String()), " ")
}
