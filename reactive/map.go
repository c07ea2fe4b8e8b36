package reactive

import (
	"fmt"
	"sort"
)

// cell is the boxed storage behind one reactive key. Keys added through
// plain Set after observation get a cell with no dep; they store and read
// but never track or notify, mirroring the dynamic-add asymmetry of
// intercepted property access.
type cell struct {
	dep   *Dep
	value any
	guard func()
}

// Map is a reactive string-keyed container. Every declared key is backed by
// its own dep; the attached Observer adds a container-level dep for shape
// changes. Keys keep their definition order for deterministic iteration.
type Map struct {
	rt    *Runtime
	ob    *Observer
	cells map[string]*cell
	order []string
}

// NewMap builds a reactive container with the given initial keys (sorted
// for determinism) and observes it, unless observing is toggled off.
func NewMap(rt *Runtime, init map[string]any) *Map {
	m := &Map{rt: rt, cells: make(map[string]*cell, len(init))}
	keys := make([]string, 0, len(init))
	for k := range init {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.defineCell(k, init[k], nil)
	}
	Observe(m)
	return m
}

func (m *Map) Runtime() *Runtime { return m.rt }

func (m *Map) Observer() *Observer { return m.ob }

func (m *Map) Len() int { return len(m.order) }

func (m *Map) Has(key string) bool {
	_, ok := m.cells[key]
	return ok
}

// Keys returns the key list in definition order. Enumeration itself is not
// tracked; watchers that must see keys come and go subscribe to the
// container dep by reading the map through a tracked parent property.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// Get reads a key. Inside a watcher evaluation it registers the key's dep,
// the value's own container dep if the value is observed, and every nested
// array's container deps.
func (m *Map) Get(key string) any {
	c, ok := m.cells[key]
	if !ok {
		return nil
	}
	if c.dep == nil {
		return c.value
	}
	if m.rt.target != nil {
		c.dep.Depend()
		if childOb := observerOf(c.value); childOb != nil {
			childOb.dep.Depend()
			if arr, isArr := c.value.(*Array); isArr {
				dependArray(arr)
			}
		}
	}
	return c.value
}

// Set writes a key. Equal values (NaN equal to NaN) are a no-op. New values
// are observed and the key's dep notified. Writing a key that does not
// exist stores it without reactivity; dynamic adds go through the package
// level Set function.
func (m *Map) Set(key string, value any) {
	c, ok := m.cells[key]
	if !ok {
		if m.ob != nil && m.rt.devMode {
			m.rt.Warn(fmt.Sprintf(
				"reactive: key %q added to an observed map without reactivity; use reactive.Set", key), nil)
		}
		m.cells[key] = &cell{value: value}
		m.order = append(m.order, key)
		return
	}
	if c.dep == nil {
		c.value = value
		return
	}
	if sameValue(c.value, value) {
		return
	}
	if c.guard != nil && m.rt.devMode {
		c.guard()
	}
	if m.rt.shouldObserve {
		value = convert(m.rt, value)
	}
	c.value = value
	Observe(value)
	c.dep.Notify()
}

// Define installs key as a reactive property, replacing any existing
// definition's value while keeping its dep so current subscribers survive.
func (m *Map) Define(key string, value any) {
	m.defineCell(key, value, nil)
}

// DefineGuarded is Define with a dev-mode callback fired on every direct
// write, used to warn against mutating externally owned values.
func (m *Map) DefineGuarded(key string, value any, guard func()) {
	m.defineCell(key, value, guard)
}

func (m *Map) defineCell(key string, value any, guard func()) {
	if m.rt.shouldObserve {
		value = convert(m.rt, value)
	}
	c, ok := m.cells[key]
	if !ok {
		c = &cell{}
		m.cells[key] = c
		m.order = append(m.order, key)
	}
	if c.dep == nil {
		c.dep = NewDep(m.rt)
	}
	c.value = value
	c.guard = guard
	if m.ob != nil {
		Observe(value)
	}
}

func (m *Map) deleteKey(key string) {
	delete(m.cells, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}
