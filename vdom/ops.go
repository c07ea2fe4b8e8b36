package vdom

// Ops is the primitive host-tree capability set the patch engine requires.
// Any platform implementing it can receive patches, real DOM bridges and
// in-memory test doubles alike.
type Ops interface {
	CreateElement(tag string) Node
	CreateText(text string) Node
	CreateComment(text string) Node
	SetTextContent(node Node, text string)
	AppendChild(parent, child Node)
	InsertBefore(parent, child, ref Node)
	RemoveChild(parent, child Node)
	ParentNode(node Node) Node
	NextSibling(node Node) Node
	TagName(node Node) string
}

// AttrOps is implemented by hosts that expose string attributes. The attrs
// module is a no-op against hosts that do not.
type AttrOps interface {
	SetAttribute(node Node, key, value string)
	RemoveAttribute(node Node, key string)
}

// ClassOps is implemented by hosts with a class concept.
type ClassOps interface {
	SetClassName(node Node, name string)
}

// StyleOps is implemented by hosts with per-property styling. Setting a
// property to the empty string clears it.
type StyleOps interface {
	SetStyle(node Node, name, value string)
}

// EventOps is implemented by hosts that deliver events. At most one
// handler is registered per event name on a node; the listeners module
// multiplexes through its own invokers.
type EventOps interface {
	AddEventListener(node Node, event string, handler func(payload any))
	RemoveEventListener(node Node, event string)
}
