package vdom

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/vueparty/internal/logging"
)

// Module is one per-concern updater. The patcher invokes the matching hook
// of every registered module, in registration order, for every node
// operation.
type Module struct {
	Name     string
	Create   func(old, vnode *VNode)
	Activate func(old, vnode *VNode)
	Update   func(old, vnode *VNode)
	Destroy  func(vnode *VNode)
}

// HookErrorHandler receives panics recovered from directive hooks.
type HookErrorHandler func(err error, vnode *VNode, context string)

type PatcherOption func(*Patcher)

// WithModules replaces the default module set. Order matters.
func WithModules(modules ...Module) PatcherOption {
	return func(p *Patcher) { p.modules = modules }
}

// WithPatchLogger routes duplicate-key and other diagnostics.
func WithPatchLogger(logger logging.Log) PatcherOption {
	return func(p *Patcher) { p.logger = logger }
}

// WithDevChecks enables development-time diagnostics such as the
// duplicate-key scan over keyed children.
func WithDevChecks(enabled bool) PatcherOption {
	return func(p *Patcher) { p.devMode = enabled }
}

// WithHookErrorHandler routes directive hook panics instead of letting
// them unwind through the patch.
func WithHookErrorHandler(handler HookErrorHandler) PatcherOption {
	return func(p *Patcher) { p.onHookError = handler }
}

// Patcher applies vnode tree differences to one host tree.
type Patcher struct {
	ops     Ops
	modules []Module
	logger  logging.Log
	devMode bool

	onHookError HookErrorHandler

	createCbs   []func(old, vnode *VNode)
	activateCbs []func(old, vnode *VNode)
	updateCbs   []func(old, vnode *VNode)
	destroyCbs  []func(vnode *VNode)
}

// emptyVNode stands in as the old node for create-phase module hooks.
var emptyVNode = &VNode{Data: &Data{}}

func NewPatcher(ops Ops, opts ...PatcherOption) *Patcher {
	p := &Patcher{
		ops:    ops,
		logger: logging.New(logging.LevelWarn),
	}
	p.modules = []Module{
		attrsModule(ops),
		classModule(ops),
		styleModule(ops),
		listenersModule(ops),
		refsModule(),
		directivesModule(p),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, m := range p.modules {
		if m.Create != nil {
			p.createCbs = append(p.createCbs, m.Create)
		}
		if m.Activate != nil {
			p.activateCbs = append(p.activateCbs, m.Activate)
		}
		if m.Update != nil {
			p.updateCbs = append(p.updateCbs, m.Update)
		}
		if m.Destroy != nil {
			p.destroyCbs = append(p.destroyCbs, m.Destroy)
		}
	}
	return p
}

// sameVnode is the reuse-versus-replace tie break: same key, same tag,
// same textual type, and data present on both or neither. Text and comment
// nodes carry no key, so they match by type alone.
func sameVnode(a, b *VNode) bool {
	return a.Key == b.Key &&
		a.Tag == b.Tag &&
		a.Comment == b.Comment &&
		(a.Data == nil) == (b.Data == nil)
}

// Patch reconciles the host tree from old to vnode and returns the host
// node backing vnode. A nil old mounts vnode detached; a nil vnode tears
// the old tree down.
func (p *Patcher) Patch(old, vnode *VNode) Node {
	if vnode == nil {
		if old != nil {
			p.invokeDestroyHook(old)
		}
		return nil
	}

	initial := false
	queue := make([]*VNode, 0, 8)

	if old == nil {
		initial = true
		p.createElm(vnode, &queue, nil, nil)
	} else if sameVnode(old, vnode) {
		p.patchVnode(old, vnode, &queue)
	} else {
		// Replacement: mount the new tree next to the old one, then drop
		// the old one.
		oldElm := old.Elm
		parentElm := p.ops.ParentNode(oldElm)
		p.createElm(vnode, &queue, parentElm, p.ops.NextSibling(oldElm))

		if vnode.Parent != nil {
			p.updateAncestorPlaceholders(vnode)
		}

		if parentElm != nil {
			p.removeVnodes([]*VNode{old}, 0, 0)
		} else if old.Tag != "" {
			p.invokeDestroyHook(old)
		}
	}

	p.invokeInsertHook(vnode, queue, initial)
	return vnode.Elm
}

// updateAncestorPlaceholders repoints component placeholder vnodes at the
// replacement root when a component swaps its root element type.
func (p *Patcher) updateAncestorPlaceholders(vnode *VNode) {
	patchable := p.isPatchable(vnode)
	for ancestor := vnode.Parent; ancestor != nil; ancestor = ancestor.Parent {
		for _, cb := range p.destroyCbs {
			cb(ancestor)
		}
		ancestor.Elm = vnode.Elm
		if patchable {
			for _, cb := range p.createCbs {
				cb(emptyVNode, ancestor)
			}
		} else {
			registerRef(ancestor)
		}
	}
}

func (p *Patcher) createElm(vnode *VNode, queue *[]*VNode, parentElm, refElm Node) {
	if p.createComponent(vnode, queue, parentElm, refElm) {
		return
	}
	switch {
	case vnode.Tag != "":
		vnode.Elm = p.ops.CreateElement(vnode.Tag)
		p.createChildren(vnode, queue)
		if vnode.Data != nil {
			p.invokeCreateHooks(vnode, queue)
		}
		p.insert(parentElm, vnode.Elm, refElm)
	case vnode.Comment:
		vnode.Elm = p.ops.CreateComment(vnode.Text)
		p.insert(parentElm, vnode.Elm, refElm)
	default:
		vnode.Elm = p.ops.CreateText(vnode.Text)
		p.insert(parentElm, vnode.Elm, refElm)
	}
}

// createComponent mounts a component placeholder through its init hook.
// The hook is expected to leave the mounted instance in vnode.Component
// and its root host node in vnode.Elm.
func (p *Patcher) createComponent(vnode *VNode, queue *[]*VNode, parentElm, refElm Node) bool {
	data := vnode.Data
	if data == nil || data.Hook == nil || data.Hook.Init == nil {
		return false
	}
	reactivated := vnode.Component != nil && data.KeepAlive
	data.Hook.Init(vnode)
	if vnode.Component == nil {
		return false
	}
	p.initComponent(vnode, queue)
	p.insert(parentElm, vnode.Elm, refElm)
	if reactivated {
		p.reactivateComponent(vnode, parentElm, refElm)
	}
	return true
}

func (p *Patcher) initComponent(vnode *VNode, queue *[]*VNode) {
	if vnode.Data.PendingInsert != nil {
		*queue = append(*queue, vnode.Data.PendingInsert...)
		vnode.Data.PendingInsert = nil
	}
	// a reactivated component reaches here without the init hook having
	// refreshed Elm; the rendered tree always knows its host node
	if ref, ok := vnode.Component.(ComponentRef); ok {
		if rendered := ref.RenderedVNode(); rendered != nil {
			vnode.Elm = rendered.Elm
		}
	}
	if p.isPatchable(vnode) {
		p.invokeCreateHooks(vnode, queue)
	} else {
		// Component rendered an empty root; only refs and the insert hook
		// apply.
		registerRef(vnode)
		*queue = append(*queue, vnode)
	}
}

// reactivateComponent reinserts a kept-alive component and gives modules
// their activate hook on the innermost rendered node.
func (p *Patcher) reactivateComponent(vnode *VNode, parentElm, refElm Node) {
	inner := vnode
	for {
		ref, ok := inner.Component.(ComponentRef)
		if !ok {
			break
		}
		next := ref.RenderedVNode()
		if next == nil {
			break
		}
		inner = next
	}
	for _, cb := range p.activateCbs {
		cb(emptyVNode, inner)
	}
	p.insert(parentElm, vnode.Elm, refElm)
}

// isPatchable looks through component placeholders to whether an actual
// element sits at the bottom.
func (p *Patcher) isPatchable(vnode *VNode) bool {
	for {
		ref, ok := vnode.Component.(ComponentRef)
		if !ok {
			break
		}
		inner := ref.RenderedVNode()
		if inner == nil {
			break
		}
		vnode = inner
	}
	return vnode.Tag != ""
}

func (p *Patcher) createChildren(vnode *VNode, queue *[]*VNode) {
	for _, child := range vnode.Children {
		p.createElm(child, queue, vnode.Elm, nil)
	}
}

func (p *Patcher) invokeCreateHooks(vnode *VNode, queue *[]*VNode) {
	for _, cb := range p.createCbs {
		cb(emptyVNode, vnode)
	}
	if hook := vnode.Data.Hook; hook != nil && hook.Insert != nil {
		*queue = append(*queue, vnode)
	}
}

func (p *Patcher) insert(parentElm, elm, refElm Node) {
	if parentElm == nil {
		return
	}
	if refElm != nil {
		if p.ops.ParentNode(refElm) == parentElm {
			p.ops.InsertBefore(parentElm, elm, refElm)
		}
		return
	}
	p.ops.AppendChild(parentElm, elm)
}

func (p *Patcher) invokeInsertHook(vnode *VNode, queue []*VNode, initial bool) {
	if initial && vnode.Parent != nil {
		// The tree was mounted detached; park the hooks on the placeholder
		// until an ancestor patch inserts it.
		if vnode.Parent.Data == nil {
			vnode.Parent.Data = &Data{}
		}
		vnode.Parent.Data.PendingInsert = queue
		return
	}
	for _, vn := range queue {
		if vn.Data != nil && vn.Data.Hook != nil && vn.Data.Hook.Insert != nil {
			vn.Data.Hook.Insert(vn)
		}
	}
}

func (p *Patcher) patchVnode(old, vnode *VNode, queue *[]*VNode) {
	if old == vnode {
		return
	}
	elm := old.Elm
	vnode.Elm = elm

	// Static subtrees are immutable per render; carry the bookkeeping over
	// and skip the diff entirely.
	if vnode.IsStatic && old.IsStatic && vnode.Key == old.Key {
		vnode.Component = old.Component
		return
	}

	data := vnode.Data
	if data != nil && data.Hook != nil && data.Hook.Prepatch != nil {
		data.Hook.Prepatch(old, vnode)
	}

	if data != nil && p.isPatchable(vnode) {
		for _, cb := range p.updateCbs {
			cb(old, vnode)
		}
	}

	if vnode.Tag != "" {
		oldCh, ch := old.Children, vnode.Children
		switch {
		case len(oldCh) > 0 && len(ch) > 0:
			p.updateChildren(elm, oldCh, ch, queue)
		case len(ch) > 0:
			if p.devMode {
				p.checkDuplicateKeys(ch)
			}
			p.addVnodes(elm, nil, ch, 0, len(ch)-1, queue)
		case len(oldCh) > 0:
			p.removeVnodes(oldCh, 0, len(oldCh)-1)
		}
	} else if old.Text != vnode.Text {
		p.ops.SetTextContent(elm, vnode.Text)
	}

	if data != nil && data.Hook != nil && data.Hook.Postpatch != nil {
		data.Hook.Postpatch(old, vnode)
	}
}

// updateChildren reconciles two flat ordered child lists with four index
// cursors, falling back to a key lookup only for out-of-order matches.
func (p *Patcher) updateChildren(parentElm Node, oldCh, newCh []*VNode, queue *[]*VNode) {
	oldStartIdx, newStartIdx := 0, 0
	oldEndIdx := len(oldCh) - 1
	newEndIdx := len(newCh) - 1
	oldStartVnode, oldEndVnode := oldCh[oldStartIdx], oldCh[oldEndIdx]
	newStartVnode, newEndVnode := newCh[newStartIdx], newCh[newEndIdx]
	var oldKeyToIdx map[string]int

	if p.devMode {
		p.checkDuplicateKeys(newCh)
	}

	for oldStartIdx <= oldEndIdx && newStartIdx <= newEndIdx {
		switch {
		case oldStartVnode == nil:
			// Slot nulled by an earlier keyed move.
			oldStartIdx++
			oldStartVnode = vnodeAt(oldCh, oldStartIdx)
		case oldEndVnode == nil:
			oldEndIdx--
			oldEndVnode = vnodeAt(oldCh, oldEndIdx)
		case sameVnode(oldStartVnode, newStartVnode):
			p.patchVnode(oldStartVnode, newStartVnode, queue)
			oldStartIdx++
			oldStartVnode = vnodeAt(oldCh, oldStartIdx)
			newStartIdx++
			newStartVnode = vnodeAt(newCh, newStartIdx)
		case sameVnode(oldEndVnode, newEndVnode):
			p.patchVnode(oldEndVnode, newEndVnode, queue)
			oldEndIdx--
			oldEndVnode = vnodeAt(oldCh, oldEndIdx)
			newEndIdx--
			newEndVnode = vnodeAt(newCh, newEndIdx)
		case sameVnode(oldStartVnode, newEndVnode):
			// Node moved right.
			p.patchVnode(oldStartVnode, newEndVnode, queue)
			p.ops.InsertBefore(parentElm, oldStartVnode.Elm, p.ops.NextSibling(oldEndVnode.Elm))
			oldStartIdx++
			oldStartVnode = vnodeAt(oldCh, oldStartIdx)
			newEndIdx--
			newEndVnode = vnodeAt(newCh, newEndIdx)
		case sameVnode(oldEndVnode, newStartVnode):
			// Node moved left.
			p.patchVnode(oldEndVnode, newStartVnode, queue)
			p.ops.InsertBefore(parentElm, oldEndVnode.Elm, oldStartVnode.Elm)
			oldEndIdx--
			oldEndVnode = vnodeAt(oldCh, oldEndIdx)
			newStartIdx++
			newStartVnode = vnodeAt(newCh, newStartIdx)
		default:
			if oldKeyToIdx == nil {
				oldKeyToIdx = keyToOldIdx(oldCh, oldStartIdx, oldEndIdx)
			}
			idxInOld := -1
			if newStartVnode.Key != "" {
				if i, ok := oldKeyToIdx[newStartVnode.Key]; ok {
					idxInOld = i
				}
			} else {
				idxInOld = findIdxInOld(newStartVnode, oldCh, oldStartIdx, oldEndIdx)
			}
			if idxInOld < 0 {
				p.createElm(newStartVnode, queue, parentElm, oldStartVnode.Elm)
			} else {
				vnodeToMove := oldCh[idxInOld]
				if sameVnode(vnodeToMove, newStartVnode) {
					p.patchVnode(vnodeToMove, newStartVnode, queue)
					oldCh[idxInOld] = nil
					p.ops.InsertBefore(parentElm, vnodeToMove.Elm, oldStartVnode.Elm)
				} else {
					// Same key but a different element; treat as new.
					p.createElm(newStartVnode, queue, parentElm, oldStartVnode.Elm)
				}
			}
			newStartIdx++
			newStartVnode = vnodeAt(newCh, newStartIdx)
		}
	}

	if oldStartIdx > oldEndIdx {
		var refElm Node
		if next := vnodeAt(newCh, newEndIdx+1); next != nil {
			refElm = next.Elm
		}
		p.addVnodes(parentElm, refElm, newCh, newStartIdx, newEndIdx, queue)
	} else if newStartIdx > newEndIdx {
		p.removeVnodes(oldCh, oldStartIdx, oldEndIdx)
	}
}

func vnodeAt(children []*VNode, i int) *VNode {
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}

func keyToOldIdx(children []*VNode, begin, end int) map[string]int {
	m := make(map[string]int, end-begin+1)
	for i := begin; i <= end; i++ {
		if c := children[i]; c != nil && c.Key != "" {
			m[c.Key] = i
		}
	}
	return m
}

func findIdxInOld(target *VNode, oldCh []*VNode, begin, end int) int {
	for i := begin; i <= end; i++ {
		if c := oldCh[i]; c != nil && sameVnode(c, target) {
			return i
		}
	}
	return -1
}

func (p *Patcher) checkDuplicateKeys(children []*VNode) {
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, child := range children {
		if child == nil || child.Key == "" {
			continue
		}
		if seen.Contains(child.Key) {
			p.logger.Warn("duplicate keys detected, this may cause an update error",
				logging.String("key", child.Key))
			continue
		}
		seen.Add(child.Key)
	}
}

func (p *Patcher) addVnodes(parentElm Node, refElm Node, vnodes []*VNode, startIdx, endIdx int, queue *[]*VNode) {
	for ; startIdx <= endIdx; startIdx++ {
		p.createElm(vnodes[startIdx], queue, parentElm, refElm)
	}
}

func (p *Patcher) removeVnodes(vnodes []*VNode, startIdx, endIdx int) {
	for ; startIdx <= endIdx; startIdx++ {
		ch := vnodes[startIdx]
		if ch == nil {
			continue
		}
		if ch.Tag != "" {
			p.removeNode(ch.Elm)
			p.invokeDestroyHook(ch)
		} else {
			p.removeNode(ch.Elm)
		}
	}
}

func (p *Patcher) removeNode(elm Node) {
	if elm == nil {
		return
	}
	if parent := p.ops.ParentNode(elm); parent != nil {
		p.ops.RemoveChild(parent, elm)
	}
}

func (p *Patcher) invokeDestroyHook(vnode *VNode) {
	if data := vnode.Data; data != nil {
		if data.Hook != nil && data.Hook.Destroy != nil {
			data.Hook.Destroy(vnode)
		}
		for _, cb := range p.destroyCbs {
			cb(vnode)
		}
	}
	for _, child := range vnode.Children {
		if child != nil {
			p.invokeDestroyHook(child)
		}
	}
}
