// Package memdom is an in-memory host tree implementing the patch engine's
// operation set. It exists for tests and benchmarks: every structural
// mutation is counted, so diff behavior can be asserted exactly.
package memdom

import (
	"sort"
	"strings"
)

type NodeKind uint8

const (
	ElementNode NodeKind = iota
	TextNode
	CommentNode
)

// Node is one host node. Fields are mutated only through Document
// operations and the per-concern setters.
type Node struct {
	Kind NodeKind
	Tag  string
	Text string

	Attrs     map[string]string
	ClassName string
	Styles    map[string]string

	parent    *Node
	children  []*Node
	listeners map[string]func(payload any)
}

func (n *Node) Parent() *Node { return n.parent }

// ChildNodes returns a copy so callers can iterate while patching.
func (n *Node) ChildNodes() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) ChildCount() int { return len(n.children) }

func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

func (n *Node) Sibling() *Node {
	if n.parent == nil {
		return nil
	}
	idx := n.index()
	if idx < 0 || idx+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx+1]
}

func (n *Node) index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

func (n *Node) HasClass(name string) bool {
	for _, c := range strings.Fields(n.ClassName) {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) StyleValue(name string) string {
	return n.Styles[name]
}

// Dispatch delivers an event payload to the node's registered handler and
// reports whether one was installed.
func (n *Node) Dispatch(event string, payload any) bool {
	handler, ok := n.listeners[event]
	if !ok {
		return false
	}
	handler(payload)
	return true
}

// OuterHTML renders the subtree as an HTML-shaped string for assertions.
// No escaping is performed; this is a test double, not a serializer.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) String() string { return n.OuterHTML() }

func (n *Node) render(sb *strings.Builder) {
	switch n.Kind {
	case TextNode:
		sb.WriteString(n.Text)
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Text)
		sb.WriteString("-->")
	default:
		sb.WriteByte('<')
		sb.WriteString(n.Tag)
		if n.ClassName != "" {
			sb.WriteString(` class="`)
			sb.WriteString(n.ClassName)
			sb.WriteByte('"')
		}
		if len(n.Styles) > 0 {
			names := make([]string, 0, len(n.Styles))
			for name := range n.Styles {
				names = append(names, name)
			}
			sort.Strings(names)
			sb.WriteString(` style="`)
			for i, name := range names {
				if i > 0 {
					sb.WriteString("; ")
				}
				sb.WriteString(name)
				sb.WriteString(": ")
				sb.WriteString(n.Styles[name])
			}
			sb.WriteByte('"')
		}
		if len(n.Attrs) > 0 {
			keys := make([]string, 0, len(n.Attrs))
			for key := range n.Attrs {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				sb.WriteByte(' ')
				sb.WriteString(key)
				sb.WriteString(`="`)
				sb.WriteString(n.Attrs[key])
				sb.WriteByte('"')
			}
		}
		sb.WriteByte('>')
		for _, c := range n.children {
			c.render(sb)
		}
		sb.WriteString("</")
		sb.WriteString(n.Tag)
		sb.WriteByte('>')
	}
}
