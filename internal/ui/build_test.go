package ui

import (
	"strings"
	"testing"

	"viewkit/internal/host/memhost"
	"viewkit/internal/units"
	"viewkit/internal/view"
)

const testLayout = `
type: box
id: root
attrs:
  padding: {left: 2, top: 1}
children:
  - type: label
    class: btn
    id: ok
    text: Hi
    attrs:
      textStyle: {fontSize: 13}
  - type: view
    id: spacer
    attrs:
      layoutWidth: 10
      layoutHeight: 5
`

const testCSS = `
.btn { layout-width: 40; layout-height: 20; }
.btn:hover { layout-width: 60; }
`

func testEnv() view.Env {
	return view.Env{Host: memhost.New(), Units: units.DefaultDensity}
}

func mustSheet(t *testing.T, src string) *Stylesheet {
	t.Helper()
	sheet, err := ParseCSS(src)
	if err != nil {
		t.Fatal(err)
	}
	return sheet
}

func TestParseLayout(t *testing.T) {
	doc, err := ParseLayout([]byte(testLayout))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Type != "box" || doc.ID != "root" || len(doc.Children) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if c := doc.Children[0]; c.Type != "label" || c.Class != "btn" || c.Text != "Hi" {
		t.Errorf("first child = %+v", c)
	}
	if _, err := ParseLayout([]byte("children: []")); err == nil {
		t.Error("ParseLayout accepted a root without type")
	}
	if _, err := ParseLayout([]byte("type: [")); err == nil {
		t.Error("ParseLayout accepted malformed yaml")
	}
}

func TestBuild(t *testing.T) {
	doc, err := ParseLayout([]byte(testLayout))
	if err != nil {
		t.Fatal(err)
	}
	root, err := Build(doc, testEnv(), mustSheet(t, testCSS), nil)
	if err != nil {
		t.Fatal(err)
	}
	label, spacer := root.Children[0], root.Children[1]
	if label.Parent != root || spacer.Parent != root {
		t.Error("children not linked to parent")
	}
	if label.View.LayoutWidth() != 40 || label.View.LayoutHeight() != 20 {
		t.Errorf("label layout = %vx%v, want stylesheet 40x20", label.View.LayoutWidth(), label.View.LayoutHeight())
	}
	if label.View.ViewWidth() != 14 || label.View.ViewHeight() != 13 {
		t.Errorf("label content = %vx%v, want 14x13", label.View.ViewWidth(), label.View.ViewHeight())
	}
	if root.View.LayoutWidth() != 42 || root.View.LayoutHeight() != 26 {
		t.Errorf("root layout = %vx%v, want 42x26", root.View.LayoutWidth(), root.View.LayoutHeight())
	}
	ln := label.View.Node().(*memhost.Node)
	sn := spacer.View.Node().(*memhost.Node)
	if ln.X != 2 || ln.Y != 1 || sn.X != 2 || sn.Y != 21 {
		t.Errorf("positions = (%v,%v) (%v,%v), want (2,1) (2,21)", ln.X, ln.Y, sn.X, sn.Y)
	}
	var n int
	root.Walk(func(*Element) { n++ })
	if n != 3 {
		t.Errorf("Walk visited %d elements, want 3", n)
	}
}

func TestBuildErrors(t *testing.T) {
	for name, doc := range map[string]*Node{
		"unknown type":   NewNode("slider", "", "", ""),
		"label children": NewNode("label", "", "", "x").Add(NewNode("view", "", "", "")),
		"bad attribute":  NewNode("box", "", "", "").Add(&Node{Type: "view", Attrs: map[string]any{"align": "sideways"}}),
	} {
		if _, err := Build(doc, testEnv(), nil, nil); err == nil {
			t.Errorf("%s: Build succeeded", name)
		}
	}
	_, err := Build(NewNode("box", "", "", "").Add(NewNode("slider", "", "", "")), testEnv(), nil, nil)
	if err == nil || !strings.Contains(err.Error(), "root/0") {
		t.Errorf("error %v does not name the failing path", err)
	}
}

func TestRegistryCustomType(t *testing.T) {
	reg := DefaultRegistry()
	var got view.Bag
	reg["spy"] = func(env view.Env, attrs view.Bag, _ []*view.View) (*view.View, error) {
		got = attrs
		return view.New(env, attrs, view.Behavior{})
	}
	doc := &Node{Type: "spy", Class: "btn", Text: "t", Attrs: map[string]any{"layoutHeight": 7}}
	if _, err := Build(doc, testEnv(), mustSheet(t, testCSS), reg); err != nil {
		t.Fatal(err)
	}
	if got["layoutWidth"] != 40.0 || got["layoutHeight"] != 7 || got["text"] != "t" || got["layoutWidthHover"] != 60.0 {
		t.Errorf("constructor attrs = %v", got)
	}
}
