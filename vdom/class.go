package vdom

import "strings"

// dataChain collects vnode data in class/style merge order: deepest
// component root first, the vnode itself, then ancestor placeholders. A
// component's own classes land between its root element's and its
// caller's, so callers override.
func dataChain(vnode *VNode) []*Data {
	var chain []*Data
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
		if next.Data != nil {
			chain = append([]*Data{next.Data}, chain...)
		}
		inner = next
	}
	if vnode.Data != nil {
		chain = append(chain, vnode.Data)
	}
	for anc := vnode.Parent; anc != nil; anc = anc.Parent {
		if anc.Data != nil {
			chain = append(chain, anc.Data)
		}
	}
	return chain
}

func hasClassData(data *Data) bool {
	return data != nil && (data.StaticClass != "" || len(data.Class) > 0)
}

// ClassForVNode resolves the class string for a vnode, merging component
// root and placeholder contributions.
func ClassForVNode(vnode *VNode) string {
	chain := dataChain(vnode)
	parts := make([]string, 0, len(chain)*2)
	for _, data := range chain {
		if data.StaticClass != "" {
			parts = append(parts, data.StaticClass)
		}
		parts = append(parts, data.Class...)
	}
	return strings.Join(parts, " ")
}

func classModule(ops Ops) Module {
	co, ok := ops.(ClassOps)
	if !ok {
		return Module{Name: "class"}
	}
	update := func(old, vnode *VNode) {
		if !hasClassData(vnode.Data) && !hasClassData(old.Data) {
			return
		}
		co.SetClassName(vnode.Elm, ClassForVNode(vnode))
	}
	return Module{Name: "class", Create: update, Update: update}
}
