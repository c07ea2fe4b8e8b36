package vue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/delaneyj/vueparty/vdom"
	"github.com/delaneyj/vueparty/vue"
)

// should resolve components locally first, then from the app registry
func TestComponentResolution(t *testing.T) {
	app, doc := newTestApp()
	app.Component("badge", &vue.Options{
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("span", nil, vdom.Text("global"))
		},
	})
	app.Component("stamp", &vue.Options{
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("span", nil, vdom.Text("stamp"))
		},
	})

	_, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{
			"badge": {Render: func(vm *vue.Instance) *vdom.VNode {
				return vm.H("span", nil, vdom.Text("local"))
			}},
		},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil,
				vm.Component("badge", nil),
				vm.Component("stamp", nil))
		},
	})

	assert.Equal(t, `<body><div><span>local</span><span>stamp</span></div></body>`, body.OuterHTML())
}

// should warn on an unknown component and render a comment placeholder
func TestUnknownComponentWarns(t *testing.T) {
	warnings := []string{}
	app, doc := newTestApp(reactive.WithWarnHandler(func(msg string, owner any) {
		warnings = append(warnings, msg)
	}))

	_, body := mountBody(t, app, doc, &vue.Options{
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("missing", nil))
		},
	})

	require.Len(t, warnings, 1)
	assert.Equal(t, `vue: unknown component "missing"`, warnings[0])
	assert.Equal(t, `<body><div><!----></div></body>`, body.OuterHTML())
}

// should pass the children on a component tag through as its slot
func TestSlotChildrenPassThrough(t *testing.T) {
	app, doc := newTestApp()

	wrapper := &vue.Options{
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("section", nil, vm.Slot()...)
		},
	}
	_, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"wrapper": wrapper},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("wrapper", nil,
				vm.H("b", nil, vdom.Text("inner")),
				vdom.Text("tail")))
		},
	})

	assert.Equal(t, `<body><div><section><b>inner</b>tail</section></div></body>`, body.OuterHTML())
}

// should re-render the wrapper when the parent's slot content changes
func TestSlotContentUpdates(t *testing.T) {
	app, doc := newTestApp()
	wrapperRenders := 0

	wrapper := &vue.Options{
		Render: func(vm *vue.Instance) *vdom.VNode {
			wrapperRenders++
			return vm.H("section", nil, vm.Slot()...)
		},
	}
	vm, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"wrapper": wrapper},
		Data: func(vm *vue.Instance) map[string]any {
			return map[string]any{"msg": "first"}
		},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("wrapper", nil,
				vdom.Text(vm.Get("msg").(string))))
		},
	})

	require.Equal(t, 1, wrapperRenders)
	require.Equal(t, `<body><div><section>first</section></div></body>`, body.OuterHTML())

	vm.Set("msg", "second")
	assert.Equal(t, 2, wrapperRenders, "slot changes are invisible to reactivity; the wrapper is forced")
	assert.Equal(t, `<body><div><section>second</section></div></body>`, body.OuterHTML())
}

// should resolve directives locally first and skip unknown ones with a warning
func TestDirectiveResolution(t *testing.T) {
	warnings := []string{}
	app, doc := newTestApp(reactive.WithWarnHandler(func(msg string, owner any) {
		warnings = append(warnings, msg)
	}))

	bound := []string{}
	app.Directive("mark", &vdom.DirectiveDef{
		Bind: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
			bound = append(bound, "global")
		},
	})

	_, body := mountBody(t, app, doc, &vue.Options{
		Directives: map[string]*vdom.DirectiveDef{
			"mark": {Bind: func(node vdom.Node, dir *vdom.Directive, vnode, old *vdom.VNode) {
				bound = append(bound, "local")
			}},
		},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", &vdom.Data{Directives: []vdom.Directive{
				{Name: "mark", Def: vm.Directive("mark")},
				{Name: "ghost", Def: vm.Directive("ghost")},
			}}, vdom.Text("x"))
		},
	})

	assert.Equal(t, []string{"local"}, bound)
	require.Len(t, warnings, 1)
	assert.Equal(t, `vue: unknown directive "ghost"`, warnings[0])
	assert.Equal(t, `<body><div>x</div></body>`, body.OuterHTML(), "a nil directive def is skipped, not fatal")
}

// should hand a component-rooted render its inner component's element
func TestComponentRootElPropagation(t *testing.T) {
	app, doc := newTestApp()

	inner := &vue.Options{
		Data: func(vm *vue.Instance) map[string]any {
			return map[string]any{"tag": "em"}
		},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H(vm.Get("tag").(string), nil, vdom.Text("deep"))
		},
	}
	hoc := &vue.Options{
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.ComponentWith(inner, &vdom.Data{Ref: "inner"})
		},
	}

	host, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"hoc": hoc},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("hoc", &vdom.Data{Ref: "hoc"}))
		},
	})

	hocVm := host.Ref("hoc").(*vue.Instance)
	innerVm := hocVm.Ref("inner").(*vue.Instance)
	require.Equal(t, `<body><div><em>deep</em></div></body>`, body.OuterHTML())
	assert.Same(t, innerVm.El(), hocVm.El(), "the wrapper owns no element of its own")

	innerVm.Set("tag", "section")
	assert.Equal(t, `<body><div><section>deep</section></div></body>`, body.OuterHTML())
	assert.Same(t, innerVm.El(), hocVm.El(), "root swaps propagate up the wrapper chain")
}

// should render a comment placeholder when render returns nothing
func TestNilRenderProducesPlaceholder(t *testing.T) {
	app, doc := newTestApp()
	_, body := mountBody(t, app, doc, &vue.Options{
		Render: func(vm *vue.Instance) *vdom.VNode { return nil },
	})
	assert.Equal(t, `<body><!----></body>`, body.OuterHTML())
}
