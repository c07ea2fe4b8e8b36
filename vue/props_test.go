package vue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/delaneyj/vueparty/vdom"
	"github.com/delaneyj/vueparty/vue"
)

// should flow props down and re-render the child when the parent's value
// changes
func TestPropsFlowFromParent(t *testing.T) {
	app, doc := newTestApp()

	child := &vue.Options{
		Props: map[string]vue.PropOptions{"msg": {Type: vue.PropString}},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("p", nil, vdom.Text(vm.Get("msg").(string)))
		},
	}
	vm, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"child": child},
		Data: func(vm *vue.Instance) map[string]any {
			return map[string]any{"msg": "hello"}
		},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("child", &vdom.Data{
				Props: map[string]any{"msg": vm.Get("msg").(string)},
			}))
		},
	})

	require.Equal(t, `<body><div><p>hello</p></div></body>`, body.OuterHTML())
	vm.Set("msg", "world")
	assert.Equal(t, `<body><div><p>world</p></div></body>`, body.OuterHTML())
}

// should skip the child render when a parent re-render passes equal props
func TestEqualPropsSkipChildRender(t *testing.T) {
	app, doc := newTestApp()
	childRenders := 0

	child := &vue.Options{
		Props: map[string]vue.PropOptions{"n": {Type: vue.PropInt}},
		Render: func(vm *vue.Instance) *vdom.VNode {
			childRenders++
			return vm.H("span", nil)
		},
	}
	vm, _ := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"child": child},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("child", &vdom.Data{
				Props: map[string]any{"n": 1},
			}))
		},
	})

	require.Equal(t, 1, childRenders)
	vm.ForceUpdate()
	assert.Equal(t, 1, childRenders, "equal prop values do not touch the child")
}

// should apply defaults for absent props and reuse a factory default across
// parent renders
func TestPropDefaults(t *testing.T) {
	app, doc := newTestApp()

	child := &vue.Options{
		Props: map[string]vue.PropOptions{
			"label": {Type: vue.PropString, Default: "anon"},
			"tags":  {Type: vue.PropList, Default: func() any { return []any{"x"} }},
		},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("span", nil, vdom.Text(vm.Get("label").(string)))
		},
	}
	vm, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"child": child},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("child", &vdom.Data{Ref: "child"}))
		},
	})

	childVm := vm.Ref("child").(*vue.Instance)
	assert.Equal(t, "anon", childVm.Get("label"))
	assert.Equal(t, `<body><div><span>anon</span></div></body>`, body.OuterHTML())

	tags, ok := childVm.Get("tags").(*reactive.Array)
	require.True(t, ok, "container defaults observe like state")
	assert.Equal(t, "x", tags.Get(0))

	vm.ForceUpdate()
	assert.Same(t, tags, childVm.Get("tags"), "a still-absent prop keeps its default")
}

// should warn on missing required, wrong type and failed validator
func TestPropValidationWarnings(t *testing.T) {
	warnings := []string{}
	app, doc := newTestApp(reactive.WithWarnHandler(func(msg string, owner any) {
		warnings = append(warnings, msg)
	}))

	child := &vue.Options{
		Props: map[string]vue.PropOptions{
			"age": {Type: vue.PropInt, Validator: func(value any) bool {
				return value.(int) > 0
			}},
			"count": {Type: vue.PropInt},
			"must":  {Type: vue.PropString, Required: true},
		},
		Render: func(vm *vue.Instance) *vdom.VNode { return vm.H("span", nil) },
	}
	mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"child": child},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("child", &vdom.Data{
				Props: map[string]any{"age": -1, "count": "nope"},
			}))
		},
	})

	assert.Equal(t, []string{
		`vue: custom validator failed for prop "age"`,
		`vue: invalid prop "count": expected int, got string`,
		`vue: missing required prop "must"`,
	}, warnings)
}

// should warn when a child mutates its own prop and let the parent overwrite
// it silently
func TestDirectPropMutationWarns(t *testing.T) {
	warnings := []string{}
	app, doc := newTestApp(reactive.WithDevMode(), reactive.WithWarnHandler(func(msg string, owner any) {
		warnings = append(warnings, msg)
	}))

	child := &vue.Options{
		Props: map[string]vue.PropOptions{"msg": {Type: vue.PropString}},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("p", nil, vdom.Text(vm.Get("msg").(string)))
		},
	}
	vm, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"child": child},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("child", &vdom.Data{
				Ref:   "child",
				Props: map[string]any{"msg": "hello"},
			}))
		},
	})

	childVm := vm.Ref("child").(*vue.Instance)
	childVm.Set("msg", "hacked")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `avoid mutating prop "msg"`)
	assert.Equal(t, `<body><div><p>hacked</p></div></body>`, body.OuterHTML())

	vm.ForceUpdate()
	assert.Equal(t, "hello", childVm.Get("msg"), "the parent's value wins on re-render")
	assert.Equal(t, `<body><div><p>hello</p></div></body>`, body.OuterHTML())
	assert.Len(t, warnings, 1, "parent-driven writes do not warn")
}

// should resolve a prop/data name collision to the prop and warn about it
func TestDataPropCollision(t *testing.T) {
	warnings := []string{}
	app, doc := newTestApp(reactive.WithDevMode(), reactive.WithWarnHandler(func(msg string, owner any) {
		warnings = append(warnings, msg)
	}))

	child := &vue.Options{
		Props: map[string]vue.PropOptions{"title": {Type: vue.PropString}},
		Data: func(vm *vue.Instance) map[string]any {
			return map[string]any{"title": "from data"}
		},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("h1", nil, vdom.Text(vm.Get("title").(string)))
		},
	}
	_, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"child": child},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("child", &vdom.Data{
				Props: map[string]any{"title": "from parent"},
			}))
		},
	})

	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], `data key "title" is already declared as a prop`)
	assert.Equal(t, `<body><div><h1>from parent</h1></div></body>`, body.OuterHTML())
}

// should pull a declared prop out of same-named attrs and keep it off the
// child's element
func TestAttrFallbackForProps(t *testing.T) {
	app, doc := newTestApp()

	child := &vue.Options{
		Props: map[string]vue.PropOptions{"label": {Type: vue.PropString}},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("p", nil, vdom.Text(vm.Get("label").(string)))
		},
	}
	_, body := mountBody(t, app, doc, &vue.Options{
		Components: map[string]*vue.Options{"child": child},
		Render: func(vm *vue.Instance) *vdom.VNode {
			return vm.H("div", nil, vm.Component("child", &vdom.Data{
				Attrs: map[string]string{"label": "from-attr", "id": "keep"},
			}))
		},
	})

	assert.Equal(t, `<body><div><p id="keep">from-attr</p></div></body>`, body.OuterHTML())
}
