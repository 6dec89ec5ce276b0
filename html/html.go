/*
Package html renders red-black trees as HTML and reads tree values from HTML.

A tree is written as nested unordered lists. Every node is a list item with
class "red" or "black"; a node with children is followed by a nested list
holding its left and its right child, in this order. A missing child is
written as an empty item with class "nil", so left and right stay
distinguishable.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

// Render writes tree t to w as a nested HTML list. label formats values; if
// nil, values are printed with %v.
func Render[T any](w io.Writer, t *rbtree.Tree[T], label func(T) string) error {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	ul := element(atom.Ul, "rbtree")
	if !t.IsEmpty() {
		ul.AppendChild(listItem(t.Root(), label))
	}
	return html.Render(w, ul)
}

func listItem[T any](it rbtree.Iterator[T], label func(T) string) *html.Node {
	if it.IsEnd() {
		return element(atom.Li, "nil")
	}
	li := element(atom.Li, it.Color().String())
	li.AppendChild(&html.Node{Type: html.TextNode, Data: label(it.Value())})
	left, right := it.Left(), it.Right()
	if left.IsEnd() && right.IsEnd() {
		return li
	}
	children := element(atom.Ul, "")
	children.AppendChild(listItem(left, label))
	children.AppendChild(listItem(right, label))
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// LoadStrings creates a tree of strings from the list items of an HTML
// fragment. The text of an item is its inner text without nested lists,
// trimmed of surrounding white space; empty items are skipped.
// If cfg.Less is nil, strings are ordered lexically.
//
// Output of Render for a tree of strings loads back into an equal tree.
func LoadStrings(input io.Reader, cfg rbtree.Config[string]) (*rbtree.Tree[string], error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Less == nil {
		cfg.Less = rbtree.Less[string]
	}
	t, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	var items []string
	for _, n := range nodes {
		items = collectItems(n, items)
	}
	tracer().Debugf("html: found %d list items", len(items))
	for _, s := range items {
		if _, err := t.Insert(s); err != nil {
			t.Clear()
			return nil, err
		}
	}
	return t, nil
}

func collectItems(n *html.Node, items []string) []string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Li {
		var b strings.Builder
		innerText(n, &b)
		if s := strings.TrimSpace(b.String()); s != "" {
			items = append(items, s)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		items = collectItems(c, items)
	}
	return items
}

// innerText collects the text of n and its descendents, without descending
// into nested lists.
func innerText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			continue
		}
		innerText(c, b)
	}
}
