// Package markup extracts structural hints from parsed source HTML.
package markup

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// hintDepth is how many levels above a disc's element its structural
// container sits.
const hintDepth = 3

// ClassHint returns the class tokens of n's great-grandparent element, in
// document order, for use with catalog.ParseStability.
//
// Postcondition: returns nil when n is nil, has fewer than three ancestors,
// or the ancestor carries no class attribute.
func ClassHint(n *html.Node) []string {
	container := n
	for i := 0; i < hintDepth && container != nil; i++ {
		container = container.Parent
	}
	if container == nil {
		return nil
	}
	classes := Attr(container, "class")
	if classes == "" {
		return nil
	}
	return strings.Fields(classes)
}

// FindAll returns every element in the tree rooted at root for which match
// returns true, in document order.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// HasClass reports whether n carries class among its class tokens.
func HasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(Attr(n, "class")), class)
}

// Attr returns the value of n's attribute key, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// Text returns the concatenated, whitespace-trimmed text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
