package dom

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/treekit/forest"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Shape returns the accessors for trees of HTML elements.
//
// Parent links an element to its parent element. Build creates a detached
// copy of an element (name and attributes only) holding the given children;
// Unflatten thus produces element-only copies and never touches the
// document.
func Shape() forest.Shape[*html.Node, *html.Node] {
	return forest.Shape[*html.Node, *html.Node]{
		ID:       func(n *html.Node) *html.Node { return n },
		Children: elements,
		Parent: func(n *html.Node) (*html.Node, bool) {
			if n.Parent == nil || n.Parent.Type != html.ElementNode {
				return nil, false
			}
			return n.Parent, true
		},
		Build: func(n *html.Node, children []*html.Node) *html.Node {
			c := &html.Node{
				Type:      n.Type,
				DataAtom:  n.DataAtom,
				Data:      n.Data,
				Namespace: n.Namespace,
				Attr:      slices.Clone(n.Attr),
			}
			for _, ch := range children {
				c.AppendChild(ch)
			}
			return c
		},
	}
}

// elements returns the element children of n.
func elements(n *html.Node) []*html.Node {
	var r []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			r = append(r, c)
		}
	}
	return r
}

// Parse reads an HTML document and returns the elements of its body as
// roots of a forest.
func Parse(r io.Reader) ([]*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("cannot parse HTML: %v", err)
		return nil, fmt.Errorf("dom: parsing document: %w", err)
	}
	for n := range Shape().All(elements(doc)) {
		if n.DataAtom == atom.Body {
			return elements(n), nil
		}
	}
	return elements(doc), nil
}

// Select returns all elements of a forest matching a CSS selector, in
// document order. Roots are candidates as well.
func Select(roots []*html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	var matches []*html.Node
	for _, root := range roots {
		if sel.Match(root) {
			matches = append(matches, root)
		}
		matches = append(matches, cascadia.QueryAll(root, sel)...)
	}
	tracer().Debugf("selector %q matches %d elements", selector, len(matches))
	return matches, nil
}

// Outline returns detached copies of the elements matching a selector,
// nested the way they are nested in the document. An element's parent in
// the outline is its nearest ancestor matching the selector; elements
// without one become roots.
func Outline(roots []*html.Node, selector string) ([]*html.Node, error) {
	selected, err := Select(roots, selector)
	if err != nil {
		return nil, err
	}
	in := make(map[*html.Node]bool, len(selected))
	for _, n := range selected {
		in[n] = true
	}
	shape := Shape()
	shape.Parent = func(n *html.Node) (*html.Node, bool) {
		for p := n.Parent; p != nil; p = p.Parent {
			if in[p] {
				return p, true
			}
		}
		return nil, false
	}
	return shape.Unflatten(selected), nil
}

// Attr returns the value of an attribute, or "" if n has no such attribute.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Label describes an element in CSS notation, e.g. "li#kale.checked".
// It is suitable for printing trees with Shape().Sprint.
func Label(n *html.Node) string {
	var b strings.Builder
	b.WriteString(n.Data)
	if id := Attr(n, "id"); id != "" {
		b.WriteString("#" + id)
	}
	for _, class := range strings.Fields(Attr(n, "class")) {
		b.WriteString("." + class)
	}
	return b.String()
}
