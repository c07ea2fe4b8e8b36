package vdom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/vueparty/internal/logging"
	"github.com/delaneyj/vueparty/memdom"
	"github.com/delaneyj/vueparty/vdom"
)

// recordingLog captures messages so tests can assert on diagnostics.
type recordingLog struct {
	warnings []string
	errors   []string
}

func (r *recordingLog) Debug(msg string, fields ...logging.Field) {}
func (r *recordingLog) Info(msg string, fields ...logging.Field)  {}
func (r *recordingLog) Warn(msg string, fields ...logging.Field) {
	r.warnings = append(r.warnings, msg)
}
func (r *recordingLog) Error(msg string, fields ...logging.Field) {
	r.errors = append(r.errors, msg)
}
func (r *recordingLog) With(fields ...logging.Field) logging.Log { return r }

func newHost(t *testing.T) (*memdom.Document, *vdom.Patcher, *memdom.Node) {
	t.Helper()
	doc := memdom.NewDocument()
	return doc, vdom.NewPatcher(doc), doc.NewElement("body")
}

func mountInto(doc *memdom.Document, p *vdom.Patcher, body *memdom.Node, vnode *vdom.VNode) {
	doc.AppendChild(body, p.Patch(nil, vnode))
}

func keyedSpans(keys ...string) *vdom.VNode {
	children := make([]*vdom.VNode, len(keys))
	for i, k := range keys {
		children[i] = vdom.H("span", &vdom.Data{Key: k}, vdom.Text(k))
	}
	return vdom.H("div", &vdom.Data{}, children...)
}

func childTexts(parent *memdom.Node) []string {
	out := []string{}
	for _, c := range parent.ChildNodes() {
		out = append(out, c.FirstChild().Text)
	}
	return out
}

// should build the whole host tree on first patch
func TestInitialMount(t *testing.T) {
	doc, p, body := newHost(t)
	vnode := vdom.H("div",
		&vdom.Data{
			Attrs:       map[string]string{"id": "app"},
			StaticClass: "shell",
			StaticStyle: map[string]string{"color": "red"},
		},
		vdom.H("span", nil, vdom.Text("hello")),
		vdom.CommentNode("marker"),
	)
	mountInto(doc, p, body, vnode)

	assert.Equal(t,
		`<body><div class="shell" style="color: red" id="app"><span>hello</span><!--marker--></div></body>`,
		body.OuterHTML())
	assert.NotNil(t, vnode.Elm)
}

// should move exactly one node for a rotation
func TestKeyedRotationIsOneMove(t *testing.T) {
	doc, p, body := newHost(t)
	old := keyedSpans("a", "b", "c")
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	next := keyedSpans("c", "a", "b")
	p.Patch(old, next)

	counts := doc.Counts()
	assert.Equal(t, 0, counts.Creates)
	assert.Equal(t, 0, counts.Removes)
	assert.Equal(t, 1, counts.Moves)
	assert.Equal(t, []string{"c", "a", "b"}, childTexts(body.FirstChild()))
}

// should reverse a list with pairwise moves
func TestKeyedReversal(t *testing.T) {
	doc, p, body := newHost(t)
	old := keyedSpans("a", "b", "c")
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	next := keyedSpans("c", "b", "a")
	p.Patch(old, next)

	counts := doc.Counts()
	assert.Equal(t, 0, counts.Creates)
	assert.Equal(t, 0, counts.Removes)
	assert.Equal(t, 2, counts.Moves)
	assert.Equal(t, []string{"c", "b", "a"}, childTexts(body.FirstChild()))
}

// should append new keys without touching the survivors
func TestKeyedAppend(t *testing.T) {
	doc, p, body := newHost(t)
	old := keyedSpans("a", "b")
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	next := keyedSpans("a", "b", "c")
	p.Patch(old, next)

	counts := doc.Counts()
	assert.Equal(t, 2, counts.Creates, "one span plus its text node")
	assert.Equal(t, 0, counts.Moves)
	assert.Equal(t, 0, counts.Removes)
	assert.Equal(t, []string{"a", "b", "c"}, childTexts(body.FirstChild()))
}

// should drop removed keys and destroy them
func TestKeyedRemoval(t *testing.T) {
	doc, p, body := newHost(t)
	old := keyedSpans("a", "b", "c")
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	next := keyedSpans("a", "c")
	p.Patch(old, next)

	counts := doc.Counts()
	assert.Equal(t, 0, counts.Creates)
	assert.Equal(t, 1, counts.Removes)
	assert.Equal(t, []string{"a", "c"}, childTexts(body.FirstChild()))
}

// should reuse a keyed node found out of order
func TestKeyedLookupMove(t *testing.T) {
	doc, p, body := newHost(t)
	old := keyedSpans("a", "b", "c", "d")
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	next := keyedSpans("b", "d", "a", "c")
	p.Patch(old, next)

	counts := doc.Counts()
	assert.Equal(t, 0, counts.Creates)
	assert.Equal(t, 0, counts.Removes)
	assert.Equal(t, 2, counts.Moves)
	assert.Equal(t, []string{"b", "d", "a", "c"}, childTexts(body.FirstChild()))
}

// should warn about duplicate keys when dev checks are on
func TestDuplicateKeyWarning(t *testing.T) {
	doc := memdom.NewDocument()
	rec := &recordingLog{}
	p := vdom.NewPatcher(doc, vdom.WithPatchLogger(rec), vdom.WithDevChecks(true))
	body := doc.NewElement("body")

	old := keyedSpans("a", "b")
	mountInto(doc, p, body, old)
	require.Empty(t, rec.warnings)

	p.Patch(old, keyedSpans("x", "x"))
	require.NotEmpty(t, rec.warnings)
	assert.Contains(t, rec.warnings[0], "duplicate keys detected")
}

// should skip static subtrees without diffing into them
func TestStaticSubtreeSkipped(t *testing.T) {
	doc, p, body := newHost(t)
	static := vdom.H("div", &vdom.Data{}, vdom.Text("frozen"))
	static.IsStatic = true
	old := vdom.H("main", nil, static)
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	// a re-render reuses the static vnode through a clone
	clone := vdom.CloneVNode(static)
	clone.Children = []*vdom.VNode{vdom.Text("thawed")}
	next := vdom.H("main", nil, clone)
	p.Patch(old, next)

	assert.Equal(t, 0, doc.Counts().TextSets)
	assert.Equal(t, `<main><div>frozen</div></main>`, body.FirstChild().OuterHTML())
	assert.Same(t, old.Children[0].Elm, clone.Elm, "the host node carries over")
}

// should replace the node on a tag change and destroy the old subtree
func TestTagChangeReplaces(t *testing.T) {
	doc, p, body := newHost(t)
	var destroyed []string
	old := vdom.H("div", &vdom.Data{Hook: &vdom.Hooks{
		Destroy: func(vn *vdom.VNode) { destroyed = append(destroyed, vn.Tag) },
	}}, vdom.Text("x"))
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	next := vdom.H("section", nil, vdom.Text("x"))
	p.Patch(old, next)

	assert.Equal(t, `<body><section>x</section></body>`, body.OuterHTML())
	assert.Equal(t, []string{"div"}, destroyed)
	counts := doc.Counts()
	assert.Equal(t, 2, counts.Creates)
	assert.Equal(t, 1, counts.Removes)
}

// should match text and comment nodes by type and rewrite in place
func TestTextAndCommentUpdateInPlace(t *testing.T) {
	doc, p, body := newHost(t)
	old := vdom.H("div", nil, vdom.Text("a"), vdom.CommentNode("note"))
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	next := vdom.H("div", nil, vdom.Text("b"), vdom.CommentNode("updated"))
	p.Patch(old, next)

	counts := doc.Counts()
	assert.Equal(t, 0, counts.Creates)
	assert.Equal(t, 2, counts.TextSets)
	assert.Equal(t, `<div>b<!--updated--></div>`, body.FirstChild().OuterHTML())
}

// should not rewrite text that did not change
func TestUnchangedTextIsLeftAlone(t *testing.T) {
	doc, p, body := newHost(t)
	old := vdom.H("div", nil, vdom.Text("same"))
	mountInto(doc, p, body, old)
	doc.ResetCounts()

	p.Patch(old, vdom.H("div", nil, vdom.Text("same")))
	assert.Equal(t, 0, doc.Counts().TextSets)
}

// should replace a text node with an element and back
func TestTextElementTransitions(t *testing.T) {
	doc, p, body := newHost(t)
	old := vdom.H("div", nil, vdom.Text("plain"))
	mountInto(doc, p, body, old)

	next := vdom.H("div", nil, vdom.H("em", nil, vdom.Text("fancy")))
	p.Patch(old, next)
	assert.Equal(t, `<div><em>fancy</em></div>`, body.FirstChild().OuterHTML())

	final := vdom.H("div", nil, vdom.Text("plain again"))
	p.Patch(next, final)
	assert.Equal(t, `<div>plain again</div>`, body.FirstChild().OuterHTML())
}

// should fire insert hooks only once the node sits in its parent
func TestInsertHookSeesAttachedNode(t *testing.T) {
	doc, p, _ := newHost(t)
	attachedTo := ""
	vnode := vdom.H("div", nil,
		vdom.H("span", &vdom.Data{Hook: &vdom.Hooks{
			Insert: func(vn *vdom.VNode) {
				if parent := vn.Elm.(*memdom.Node).Parent(); parent != nil {
					attachedTo = parent.Tag
				}
			},
		}}, vdom.Text("x")))
	p.Patch(nil, vnode)
	assert.Equal(t, "div", attachedTo)
	_ = doc
}

// should only run destroy hooks on a nil patch, leaving the host tree alone
func TestNilPatchDestroysWithoutUnmounting(t *testing.T) {
	doc, p, body := newHost(t)
	var destroyed []string
	hookFor := func(tag string) *vdom.Data {
		return &vdom.Data{Hook: &vdom.Hooks{
			Destroy: func(vn *vdom.VNode) { destroyed = append(destroyed, vn.Tag) },
		}}
	}
	tree := vdom.H("div", hookFor("div"), vdom.H("span", hookFor("span")))
	mountInto(doc, p, body, tree)

	result := p.Patch(tree, nil)
	assert.Nil(t, result)
	assert.Equal(t, []string{"div", "span"}, destroyed, "parents report before children")
	assert.Equal(t, `<body><div><span></span></div></body>`, body.OuterHTML(),
		"the caller owns removal of the root host node")
}

// should keep prepatch and postpatch hooks around the children diff
func TestPatchHookOrdering(t *testing.T) {
	doc, p, body := newHost(t)
	var order []string
	mk := func() *vdom.Data {
		return &vdom.Data{Hook: &vdom.Hooks{
			Prepatch:  func(old, vn *vdom.VNode) { order = append(order, "prepatch") },
			Postpatch: func(old, vn *vdom.VNode) { order = append(order, "postpatch") },
		}}
	}
	old := vdom.H("div", mk(), vdom.H("span", &vdom.Data{Hook: &vdom.Hooks{
		Prepatch: func(o, vn *vdom.VNode) { order = append(order, "child prepatch") },
	}}))
	mountInto(doc, p, body, old)

	next := vdom.H("div", mk(), vdom.H("span", &vdom.Data{Hook: &vdom.Hooks{
		Prepatch: func(o, vn *vdom.VNode) { order = append(order, "child prepatch") },
	}}))
	p.Patch(old, next)
	assert.Equal(t, []string{"prepatch", "child prepatch", "postpatch"}, order)
}
