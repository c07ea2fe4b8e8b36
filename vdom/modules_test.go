package vdom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/vueparty/memdom"
	"github.com/delaneyj/vueparty/vdom"
)

// should add, update and remove attributes across patches
func TestAttrsLifecycle(t *testing.T) {
	doc, p, body := newHost(t)
	old := vdom.H("input", &vdom.Data{Attrs: map[string]string{
		"type":        "text",
		"placeholder": "name",
	}})
	mountInto(doc, p, body, old)
	el := body.FirstChild()

	v, ok := el.Attr("type")
	require.True(t, ok)
	require.Equal(t, "text", v)

	next := vdom.H("input", &vdom.Data{Attrs: map[string]string{"type": "email"}})
	p.Patch(old, next)

	v, _ = el.Attr("type")
	assert.Equal(t, "email", v)
	_, ok = el.Attr("placeholder")
	assert.False(t, ok, "dropped attributes are removed from the host")
}

// should merge static and dynamic class and track updates
func TestClassMerging(t *testing.T) {
	doc, p, body := newHost(t)
	old := vdom.H("div", &vdom.Data{
		StaticClass: "btn",
		Class:       []string{"active", "primary"},
	})
	mountInto(doc, p, body, old)
	el := body.FirstChild()
	assert.Equal(t, "btn active primary", el.ClassName)

	next := vdom.H("div", &vdom.Data{
		StaticClass: "btn",
		Class:       []string{"disabled"},
	})
	p.Patch(old, next)
	assert.Equal(t, "btn disabled", el.ClassName)
}

// should apply style properties and clear the ones that disappear
func TestStyleUpdates(t *testing.T) {
	doc, p, body := newHost(t)
	old := vdom.H("div", &vdom.Data{Style: map[string]string{
		"color":  "red",
		"margin": "4px",
	}})
	mountInto(doc, p, body, old)
	el := body.FirstChild()
	assert.Equal(t, "red", el.StyleValue("color"))
	assert.Equal(t, "4px", el.StyleValue("margin"))

	next := vdom.H("div", &vdom.Data{Style: map[string]string{"color": "blue"}})
	p.Patch(old, next)
	assert.Equal(t, "blue", el.StyleValue("color"))
	assert.Equal(t, "", el.StyleValue("margin"))

	// dynamic style wins over static within one data block
	withStatic := vdom.H("div", &vdom.Data{
		StaticStyle: map[string]string{"color": "green", "padding": "1px"},
		Style:       map[string]string{"color": "blue"},
	})
	p.Patch(next, withStatic)
	assert.Equal(t, "blue", el.StyleValue("color"))
	assert.Equal(t, "1px", el.StyleValue("padding"))
}

// should keep one host registration per event across handler swaps
func TestListenerHandlerSwap(t *testing.T) {
	doc, p, body := newHost(t)
	var calls []string
	listenerTo := func(tag string) map[string]*vdom.Listener {
		return map[string]*vdom.Listener{
			"click": {Fn: func(payload any) { calls = append(calls, tag) }},
		}
	}
	old := vdom.H("button", &vdom.Data{On: listenerTo("first")})
	mountInto(doc, p, body, old)
	el := body.FirstChild()

	require.True(t, el.Dispatch("click", nil))
	require.Equal(t, []string{"first"}, calls)

	next := vdom.H("button", &vdom.Data{On: listenerTo("second")})
	p.Patch(old, next)
	require.True(t, el.Dispatch("click", nil))
	assert.Equal(t, []string{"first", "second"}, calls)

	// dropping the listener removes the host registration
	final := vdom.H("button", &vdom.Data{On: map[string]*vdom.Listener{}})
	p.Patch(next, final)
	assert.False(t, el.Dispatch("click", nil))
}

// should pass the event payload through to the handler
func TestListenerPayload(t *testing.T) {
	doc, p, body := newHost(t)
	var got any
	vnode := vdom.H("input", &vdom.Data{On: map[string]*vdom.Listener{
		"input": {Fn: func(payload any) { got = payload }},
	}})
	mountInto(doc, p, body, vnode)

	body.FirstChild().Dispatch("input", "typed text")
	assert.Equal(t, "typed text", got)
}

// should unregister a once listener after its first delivery
func TestOnceListener(t *testing.T) {
	doc, p, body := newHost(t)
	fired := 0
	vnode := vdom.H("button", &vdom.Data{On: map[string]*vdom.Listener{
		"click": {Fn: func(payload any) { fired++ }, Once: true},
	}})
	mountInto(doc, p, body, vnode)
	el := body.FirstChild()

	assert.True(t, el.Dispatch("click", nil))
	assert.Equal(t, 1, fired)
	assert.False(t, el.Dispatch("click", nil), "the registration is gone")
	assert.Equal(t, 1, fired)
}

// should walk a directive through bind, inserted, update and unbind
func TestDirectiveLifecycle(t *testing.T) {
	doc, p, body := newHost(t)
	var order []string
	def := &vdom.DirectiveDef{
		Bind: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			order = append(order, fmt.Sprintf("bind:%v", dir.Value))
		},
		Inserted: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			order = append(order, "inserted")
		},
		Update: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			order = append(order, fmt.Sprintf("update:%v->%v", dir.OldValue, dir.Value))
		},
		ComponentUpdated: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			order = append(order, "componentUpdated")
		},
		Unbind: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			order = append(order, "unbind")
		},
	}
	withValue := func(v any) *vdom.VNode {
		return vdom.H("div", &vdom.Data{Directives: []vdom.Directive{
			{Name: "track", Def: def, Value: v},
		}})
	}

	old := withValue(1)
	mountInto(doc, p, body, old)
	require.Equal(t, []string{"bind:1", "inserted"}, order)

	next := withValue(2)
	p.Patch(old, next)
	require.Equal(t, []string{"bind:1", "inserted", "update:1->2", "componentUpdated"}, order)

	final := vdom.H("div", &vdom.Data{})
	p.Patch(next, final)
	assert.Equal(t, []string{"bind:1", "inserted", "update:1->2", "componentUpdated", "unbind"}, order)
}

// should hand the directive its host node and modifiers
func TestDirectiveReceivesContext(t *testing.T) {
	doc, p, body := newHost(t)
	var boundTo *memdom.Node
	var mods map[string]bool
	def := &vdom.DirectiveDef{
		Bind: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			boundTo = node.(*memdom.Node)
			mods = dir.Modifiers
		},
	}
	vnode := vdom.H("input", &vdom.Data{Directives: []vdom.Directive{
		{Name: "focus", Def: def, Arg: "lazy", Modifiers: map[string]bool{"trim": true}},
	}})
	mountInto(doc, p, body, vnode)

	require.NotNil(t, boundTo)
	assert.Equal(t, "input", boundTo.Tag)
	assert.Equal(t, map[string]bool{"trim": true}, mods)
}

// should route a panicking directive hook instead of unwinding the patch
func TestDirectiveHookPanicIsRouted(t *testing.T) {
	doc := memdom.NewDocument()
	var contexts []string
	p := vdom.NewPatcher(doc, vdom.WithHookErrorHandler(func(err error, vnode *vdom.VNode, context string) {
		contexts = append(contexts, context)
	}))
	body := doc.NewElement("body")

	def := &vdom.DirectiveDef{
		Bind: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			panic("directive exploded")
		},
	}
	vnode := vdom.H("div", &vdom.Data{Directives: []vdom.Directive{
		{Name: "volatile", Def: def},
	}}, vdom.Text("still mounts"))

	assert.NotPanics(t, func() { mountInto(doc, p, body, vnode) })
	assert.Equal(t, `<div>still mounts</div>`, body.FirstChild().OuterHTML())
	require.Len(t, contexts, 1)
	assert.Equal(t, "directive volatile bind hook", contexts[0])
}

type testRegistry struct {
	values map[string]any
	inFor  map[string]bool
	gone   []string
}

func newTestRegistry() *testRegistry {
	return &testRegistry{values: map[string]any{}, inFor: map[string]bool{}}
}

func (r *testRegistry) RegisterRef(name string, value any, inFor bool) {
	r.values[name] = value
	r.inFor[name] = inFor
}

func (r *testRegistry) UnregisterRef(name string, value any) {
	if r.values[name] == value {
		delete(r.values, name)
	}
	r.gone = append(r.gone, name)
}

// should register refs on create and unregister on removal
func TestRefRegistration(t *testing.T) {
	doc, p, body := newHost(t)
	reg := newTestRegistry()

	old := vdom.H("div", nil, vdom.H("input", &vdom.Data{Ref: "field", RefOwner: reg}))
	mountInto(doc, p, body, old)
	el, ok := reg.values["field"].(*memdom.Node)
	require.True(t, ok)
	assert.Equal(t, "input", el.Tag)
	assert.False(t, reg.inFor["field"])

	// renaming moves the registration
	renamed := vdom.H("div", nil, vdom.H("input", &vdom.Data{Ref: "renamed", RefOwner: reg}))
	p.Patch(old, renamed)
	assert.NotContains(t, reg.values, "field")
	assert.Contains(t, reg.values, "renamed")

	// removing the element unregisters on destroy
	empty := vdom.H("div", nil, vdom.CommentNode(""))
	p.Patch(renamed, empty)
	assert.NotContains(t, reg.values, "renamed")
	assert.Contains(t, reg.gone, "renamed")
}

// should flag list refs so owners can collect them
func TestRefInFor(t *testing.T) {
	doc, p, body := newHost(t)
	reg := newTestRegistry()
	vnode := vdom.H("ul", nil,
		vdom.H("li", &vdom.Data{Key: "1", Ref: "item", RefInFor: true, RefOwner: reg}),
		vdom.H("li", &vdom.Data{Key: "2", Ref: "item", RefInFor: true, RefOwner: reg}),
	)
	mountInto(doc, p, body, vnode)

	assert.True(t, reg.inFor["item"])
	assert.Contains(t, reg.values, "item")
}
