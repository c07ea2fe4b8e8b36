// Package vdom diffs trees of virtual nodes and applies the difference to a
// host tree through a small set of primitive operations. It knows nothing
// about components or reactivity; the component layer drives it through
// vnode data hooks.
package vdom

// Node is an opaque host-tree handle. The patch engine never inspects one
// beyond handing it back to the Ops implementation that produced it.
type Node any

// VNode describes one host node for a single render. A vnode is immutable
// from the renderer's point of view; the patcher fills in Elm and Component
// as it materializes the tree.
type VNode struct {
	Tag      string
	Data     *Data
	Children []*VNode
	Text     string
	Comment  bool
	IsStatic bool
	Key      string

	// Elm is the host node this vnode is currently mounted as.
	Elm Node

	// Parent is the component placeholder vnode this vnode is the rendered
	// root of, when it is one.
	Parent *VNode

	// Component holds the mounted component instance for placeholder
	// vnodes. The patcher only stores and compares it; the value is owned
	// by the component layer.
	Component any

	// ComponentMeta is the component layer's per-render payload for
	// placeholder vnodes. The patcher never reads it.
	ComponentMeta any
}

// ComponentRef lets the patcher see through a component placeholder to the
// vnode tree the component actually rendered.
type ComponentRef interface {
	RenderedVNode() *VNode
}

// RefRegistry receives named element and component registrations from
// vnodes carrying a ref.
type RefRegistry interface {
	RegisterRef(name string, value any, inFor bool)
	UnregisterRef(name string, value any)
}

// Hooks are per-vnode lifecycle callbacks, invoked by the patcher at the
// matching patch phases. The component layer installs them on placeholder
// vnodes; the directives module merges into Insert and Postpatch.
type Hooks struct {
	Init      func(vnode *VNode)
	Prepatch  func(old, vnode *VNode)
	Insert    func(vnode *VNode)
	Postpatch func(old, vnode *VNode)
	Destroy   func(vnode *VNode)
}

// Listener is one host event subscription. The listeners module installs a
// stable invoker per event name and swaps Fn on update, so the host sees a
// single registration for the lifetime of the element.
type Listener struct {
	Fn   func(payload any)
	Once bool

	inv *invoker
}

// DirectiveDef is the set of lifecycle callbacks a custom directive may
// implement. Any of them may be nil.
type DirectiveDef struct {
	Bind             func(node Node, dir *Directive, vnode, old *VNode)
	Inserted         func(node Node, dir *Directive, vnode, old *VNode)
	Update           func(node Node, dir *Directive, vnode, old *VNode)
	ComponentUpdated func(node Node, dir *Directive, vnode, old *VNode)
	Unbind           func(node Node, dir *Directive, vnode, old *VNode)
}

// Directive is one resolved directive use on a vnode.
type Directive struct {
	Name      string
	Def       *DirectiveDef
	Value     any
	OldValue  any
	Arg       string
	Modifiers map[string]bool
}

// Data carries everything about a vnode beyond its tag and children. All
// fields are optional.
type Data struct {
	Key         string
	Attrs       map[string]string
	StaticClass string
	Class       []string
	StaticStyle map[string]string
	Style       map[string]string
	On          map[string]*Listener
	Directives  []Directive

	// Props carries arbitrary input values for component placeholders.
	// Host-concern modules ignore it.
	Props map[string]any

	Ref      string
	RefInFor bool
	RefOwner RefRegistry

	Hook      *Hooks
	KeepAlive bool

	// PendingInsert buffers insert hooks collected while a component was
	// patched detached, until an ancestor patch actually inserts it.
	PendingInsert []*VNode
}

// H builds an element vnode. Nil children are skipped so render functions
// can emit optional branches without filtering.
func H(tag string, data *Data, children ...*VNode) *VNode {
	vnode := &VNode{
		Tag:      tag,
		Data:     data,
		Children: make([]*VNode, 0, len(children)),
	}
	if data != nil {
		vnode.Key = data.Key
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		vnode.Children = append(vnode.Children, child)
	}
	return vnode
}

// Text builds a text vnode.
func Text(text string) *VNode {
	return &VNode{Text: text}
}

// CommentNode builds a comment vnode.
func CommentNode(text string) *VNode {
	return &VNode{Text: text, Comment: true}
}

// Empty builds the comment placeholder used where a render produced
// nothing.
func Empty() *VNode {
	return CommentNode("")
}

// CloneVNode shallow-copies a vnode with a fresh children slice. Static
// subtrees reused across renders must be cloned so each render owns its
// Elm bookkeeping.
func CloneVNode(vnode *VNode) *VNode {
	cloned := &VNode{
		Tag:           vnode.Tag,
		Data:          vnode.Data,
		Text:          vnode.Text,
		Comment:       vnode.Comment,
		IsStatic:      vnode.IsStatic,
		Key:           vnode.Key,
		Elm:           vnode.Elm,
		Parent:        vnode.Parent,
		Component:     vnode.Component,
		ComponentMeta: vnode.ComponentMeta,
	}
	if vnode.Children != nil {
		cloned.Children = append([]*VNode(nil), vnode.Children...)
	}
	return cloned
}

// IsTextual reports whether the vnode is a text or comment node. Textual
// nodes are matched by type during diffing, never by key.
func (v *VNode) IsTextual() bool {
	return v.Tag == ""
}

func ensureHook(data *Data) *Hooks {
	if data.Hook == nil {
		data.Hook = &Hooks{}
	}
	return data.Hook
}

// mergeInsertHook chains fn after any insert hook already present.
func mergeInsertHook(vnode *VNode, fn func(*VNode)) {
	if vnode.Data == nil {
		vnode.Data = &Data{}
	}
	hook := ensureHook(vnode.Data)
	prev := hook.Insert
	hook.Insert = func(vn *VNode) {
		if prev != nil {
			prev(vn)
		}
		fn(vn)
	}
}

// mergePostpatchHook chains fn after any postpatch hook already present.
func mergePostpatchHook(vnode *VNode, fn func(old, vn *VNode)) {
	if vnode.Data == nil {
		vnode.Data = &Data{}
	}
	hook := ensureHook(vnode.Data)
	prev := hook.Postpatch
	hook.Postpatch = func(old, vn *VNode) {
		if prev != nil {
			prev(old, vn)
		}
		fn(old, vn)
	}
}
