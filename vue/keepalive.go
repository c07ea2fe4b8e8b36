package vue

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/vueparty/vdom"
)

// KeepAliveConfig filters and bounds what a keep-alive wrapper caches.
// Include and Exclude match component names; Exclude wins. Max of zero
// means unbounded.
type KeepAliveConfig struct {
	Include []string
	Exclude []string
	Max     int
}

// KeepAlive builds the options for an abstract wrapper that caches its
// child component instance across renders. A cached child is deactivated
// instead of destroyed when it leaves the tree, and reactivated with its
// state intact when it comes back.
func KeepAlive(cfg KeepAliveConfig) *Options {
	return &Options{
		Name:     "keep-alive",
		Abstract: true,
		Created: Hooks(func(vm *Instance) {
			vm.keepAlive = &keepAliveState{
				cfg:     cfg,
				include: mapset.NewThreadUnsafeSet(cfg.Include...),
				exclude: mapset.NewThreadUnsafeSet(cfg.Exclude...),
				cache:   make(map[uint64]*cacheEntry),
			}
		}),
		Mounted:   Hooks(func(vm *Instance) { vm.keepAlive.stashPending(vm) }),
		Updated:   Hooks(func(vm *Instance) { vm.keepAlive.stashPending(vm) }),
		Destroyed: Hooks(func(vm *Instance) { vm.keepAlive.pruneAll() }),
		Render: func(vm *Instance) *vdom.VNode {
			return vm.keepAlive.render(vm)
		},
	}
}

type keepAliveState struct {
	cfg     KeepAliveConfig
	include mapset.Set[string]
	exclude mapset.Set[string]

	// cache holds instances by key; keys orders them oldest-first so the
	// front is the LRU eviction candidate.
	cache map[uint64]*cacheEntry
	keys  []uint64

	// pendingVnode is the placeholder waiting to be cached once its
	// instance exists, written into the cache from mounted or updated.
	pendingVnode *vdom.VNode
	pendingKey   uint64
}

type cacheEntry struct {
	tag      string
	instance *Instance
}

func (ka *keepAliveState) render(vm *Instance) *vdom.VNode {
	vnode := firstComponentChild(vm.slotChildren)
	if vnode == nil {
		if len(vm.slotChildren) > 0 {
			return vm.slotChildren[0]
		}
		return vdom.Empty()
	}
	meta := vnode.ComponentMeta.(*componentMeta)
	if !ka.shouldCache(meta.opts.Name) {
		return vnode
	}
	key := ka.cacheKey(vm.app, vnode, meta)
	if entry, ok := ka.cache[key]; ok {
		vnode.Component = entry.instance
		ka.touch(key)
	} else {
		// The instance does not exist until the patch runs; cache it from
		// the mounted or updated hook.
		ka.pendingVnode = vnode
		ka.pendingKey = key
	}
	if vnode.Data == nil {
		vnode.Data = &vdom.Data{}
	}
	vnode.Data.KeepAlive = true
	return vnode
}

// shouldCache applies the name filters. An anonymous component passes only
// when no include list is set.
func (ka *keepAliveState) shouldCache(name string) bool {
	if name != "" && ka.exclude.Contains(name) {
		return false
	}
	if ka.include.Cardinality() == 0 {
		return true
	}
	return name != "" && ka.include.Contains(name)
}

// cacheKey prefers an explicit vnode key; otherwise the component id plus
// name, so anonymous uses of the same options share one slot.
func (ka *keepAliveState) cacheKey(app *App, vnode *vdom.VNode, meta *componentMeta) uint64 {
	if vnode.Key != "" {
		return xxhash.Sum64String(vnode.Key)
	}
	id := strconv.FormatUint(app.cidFor(meta.opts), 10)
	if meta.opts.Name != "" {
		id += "::" + meta.opts.Name
	}
	return xxhash.Sum64String(id)
}

func (ka *keepAliveState) touch(key uint64) {
	for i, k := range ka.keys {
		if k == key {
			ka.keys = append(ka.keys[:i], ka.keys[i+1:]...)
			break
		}
	}
	ka.keys = append(ka.keys, key)
}

func (ka *keepAliveState) stashPending(vm *Instance) {
	if ka.pendingVnode == nil {
		return
	}
	vnode := ka.pendingVnode
	ka.pendingVnode = nil
	inst, ok := vnode.Component.(*Instance)
	if !ok {
		return
	}
	ka.cache[ka.pendingKey] = &cacheEntry{tag: vnode.Tag, instance: inst}
	ka.keys = append(ka.keys, ka.pendingKey)
	if ka.cfg.Max > 0 && len(ka.keys) > ka.cfg.Max {
		ka.prune(vm, ka.keys[0])
	}
}

// prune drops one cache slot, destroying the instance unless it is the one
// currently shown.
func (ka *keepAliveState) prune(vm *Instance, key uint64) {
	if entry, ok := ka.cache[key]; ok {
		current := vm.renderedVnode
		if current == nil || entry.tag != current.Tag {
			entry.instance.Destroy()
		}
	}
	delete(ka.cache, key)
	for i, k := range ka.keys {
		if k == key {
			ka.keys = append(ka.keys[:i], ka.keys[i+1:]...)
			break
		}
	}
}

// pruneAll runs at wrapper teardown. The shown child was only deactivated
// by the placeholder's destroy hook, so every cached instance is destroyed
// here for real.
func (ka *keepAliveState) pruneAll() {
	for _, entry := range ka.cache {
		entry.instance.Destroy()
	}
	ka.cache = make(map[uint64]*cacheEntry)
	ka.keys = nil
}

// firstComponentChild finds the child the wrapper manages, skipping text
// and plain element nodes the way whitespace is skipped in templates.
func firstComponentChild(children []*vdom.VNode) *vdom.VNode {
	for _, child := range children {
		if child == nil {
			continue
		}
		if _, ok := child.ComponentMeta.(*componentMeta); ok {
			return child
		}
	}
	return nil
}
