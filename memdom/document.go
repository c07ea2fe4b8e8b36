package memdom

import (
	"github.com/delaneyj/vueparty/vdom"
)

// OpCounts tallies the structural operations a Document has performed. A
// move is an insertion of a node that was already attached somewhere.
type OpCounts struct {
	Creates  int
	Inserts  int
	Moves    int
	Removes  int
	TextSets int
}

// Document owns a host tree and implements the full patch engine
// capability set, attributes, class, style and events included.
type Document struct {
	counts OpCounts
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Counts() OpCounts { return d.counts }

func (d *Document) ResetCounts() { d.counts = OpCounts{} }

func (d *Document) NewElement(tag string) *Node {
	d.counts.Creates++
	return &Node{Kind: ElementNode, Tag: tag}
}

func (d *Document) NewText(text string) *Node {
	d.counts.Creates++
	return &Node{Kind: TextNode, Text: text}
}

func (d *Document) NewComment(text string) *Node {
	d.counts.Creates++
	return &Node{Kind: CommentNode, Text: text}
}

func (d *Document) detach(n *Node) {
	parent := n.parent
	if parent == nil {
		return
	}
	idx := n.index()
	parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	n.parent = nil
}

func (d *Document) attach(parent, child *Node, at int) {
	if at < 0 || at > len(parent.children) {
		at = len(parent.children)
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[at+1:], parent.children[at:])
	parent.children[at] = child
	child.parent = parent
}

func (d *Document) place(parent, child *Node, at int) {
	if child.parent != nil {
		d.detach(child)
		d.counts.Moves++
	} else {
		d.counts.Inserts++
	}
	d.attach(parent, child, at)
}

// vdom.Ops

func (d *Document) CreateElement(tag string) vdom.Node { return d.NewElement(tag) }

func (d *Document) CreateText(text string) vdom.Node { return d.NewText(text) }

func (d *Document) CreateComment(text string) vdom.Node { return d.NewComment(text) }

func (d *Document) SetTextContent(node vdom.Node, text string) {
	d.counts.TextSets++
	node.(*Node).Text = text
}

func (d *Document) AppendChild(parent, child vdom.Node) {
	p := parent.(*Node)
	d.place(p, child.(*Node), len(p.children))
}

func (d *Document) InsertBefore(parent, child, ref vdom.Node) {
	p := parent.(*Node)
	if ref == nil {
		d.place(p, child.(*Node), len(p.children))
		return
	}
	c := child.(*Node)
	r := ref.(*Node)
	if c == r {
		return
	}
	// Detach first so the reference index is computed against the final
	// sibling list.
	if c.parent != nil {
		d.detach(c)
		d.counts.Moves++
	} else {
		d.counts.Inserts++
	}
	d.attach(p, c, r.index())
}

func (d *Document) RemoveChild(parent, child vdom.Node) {
	c := child.(*Node)
	if c.parent != parent.(*Node) {
		return
	}
	d.detach(c)
	d.counts.Removes++
}

func (d *Document) ParentNode(node vdom.Node) vdom.Node {
	if p := node.(*Node).parent; p != nil {
		return p
	}
	return nil
}

func (d *Document) NextSibling(node vdom.Node) vdom.Node {
	if s := node.(*Node).Sibling(); s != nil {
		return s
	}
	return nil
}

func (d *Document) TagName(node vdom.Node) string { return node.(*Node).Tag }

// vdom.AttrOps

func (d *Document) SetAttribute(node vdom.Node, key, value string) {
	n := node.(*Node)
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = value
}

func (d *Document) RemoveAttribute(node vdom.Node, key string) {
	delete(node.(*Node).Attrs, key)
}

// vdom.ClassOps

func (d *Document) SetClassName(node vdom.Node, name string) {
	node.(*Node).ClassName = name
}

// vdom.StyleOps

func (d *Document) SetStyle(node vdom.Node, name, value string) {
	n := node.(*Node)
	if value == "" {
		delete(n.Styles, name)
		return
	}
	if n.Styles == nil {
		n.Styles = map[string]string{}
	}
	n.Styles[name] = value
}

// vdom.EventOps

func (d *Document) AddEventListener(node vdom.Node, event string, handler func(payload any)) {
	n := node.(*Node)
	if n.listeners == nil {
		n.listeners = map[string]func(payload any){}
	}
	n.listeners[event] = handler
}

func (d *Document) RemoveEventListener(node vdom.Node, event string) {
	delete(node.(*Node).listeners, event)
}

var (
	_ vdom.Ops      = (*Document)(nil)
	_ vdom.AttrOps  = (*Document)(nil)
	_ vdom.ClassOps = (*Document)(nil)
	_ vdom.StyleOps = (*Document)(nil)
	_ vdom.EventOps = (*Document)(nil)
)
