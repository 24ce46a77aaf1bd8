package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"viewkit/internal/host/memhost"
	"viewkit/internal/logger"
)

func testEngine(t *testing.T, css string) (*Engine, *logger.Logger) {
	t.Helper()
	log := logger.New("")
	e := New(testEnv(), log)
	if err := e.SetStylesheet(mustSheet(t, css)); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseLayout([]byte(testLayout))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetLayout(doc); err != nil {
		t.Fatal(err)
	}
	return e, log
}

func logged(log *logger.Logger, s string) bool {
	for _, l := range log.Lines() {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

func TestEngineHover(t *testing.T) {
	e, _ := testEngine(t, testCSS)
	root := e.Root()
	label := e.ByID("ok")
	if label == nil || e.ByID("spacer") == nil {
		t.Fatal("ByID did not find the layout ids")
	}

	hit, _, _ := root.View.Node().(*memhost.Node).Pick(10, 5)
	if hit != label.View.Node() {
		t.Fatalf("Pick(10,5) = %v, want the label node", hit)
	}
	e.Hover(hit)
	if label.View.Selector() != HoverSelector || label.View.LayoutWidth() != 60 {
		t.Errorf("hovered label: selector %q width %v", label.View.Selector(), label.View.LayoutWidth())
	}
	if root.View.LayoutWidth() != 62 {
		t.Errorf("root width = %v, want 62 after child grew", root.View.LayoutWidth())
	}

	e.Hover(nil)
	if label.View.Selector() != "" || label.View.LayoutWidth() != 40 || root.View.LayoutWidth() != 42 {
		t.Errorf("after unhover: selector %q label %v root %v", label.View.Selector(), label.View.LayoutWidth(), root.View.LayoutWidth())
	}
}

func TestEngineHoverMovesBetweenViews(t *testing.T) {
	e, _ := testEngine(t, testCSS)
	label, spacer := e.ByID("ok"), e.ByID("spacer")
	e.Hover(label.View.Node())
	e.Hover(spacer.View.Node())
	if label.View.Selector() != "" || spacer.View.Selector() != HoverSelector {
		t.Errorf("selectors = %q, %q", label.View.Selector(), spacer.View.Selector())
	}
}

func TestEngineSelectorErrorIsLogged(t *testing.T) {
	e, log := testEngine(t, testCSS+".btn:hover { align: sideways; }")
	label := e.ByID("ok")
	e.Hover(label.View.Node())
	if label.View.Selector() != "" || label.View.LayoutWidth() != 40 {
		t.Errorf("failed selector changed the view: %q %v", label.View.Selector(), label.View.LayoutWidth())
	}
	if !logged(log, "sideways") {
		t.Errorf("error not logged: %v", log.Lines())
	}
	if e.Hovered() != nil {
		t.Errorf("Hovered = %v after a failed switch, want nil", e.Hovered().Node.ID)
	}
	e.Hover(e.ByID("spacer").View.Node())
	if e.Hovered() != e.ByID("spacer") {
		t.Error("Hovered does not track the spacer")
	}
}

func TestEngineKeepsTreeOnBuildError(t *testing.T) {
	e, log := testEngine(t, testCSS)
	root := e.Root()
	if err := e.SetLayout(NewNode("slider", "", "", "")); err == nil {
		t.Fatal("SetLayout accepted an unknown type")
	}
	if e.Root() != root {
		t.Error("failed build replaced the tree")
	}
	if !logged(log, "build failed") {
		t.Errorf("build failure not logged: %v", log.Lines())
	}
}

func TestEngineRestyleRebuilds(t *testing.T) {
	e, _ := testEngine(t, testCSS)
	if err := e.SetStylesheet(mustSheet(t, ".btn { layout-width: 30; layout-height: 20; }")); err != nil {
		t.Fatal(err)
	}
	if w := e.ByID("ok").View.LayoutWidth(); w != 30 {
		t.Errorf("label width after restyle = %v, want 30", w)
	}
}

func TestEngineLoadFiles(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "style.css")
	layout := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(css, []byte(testCSS), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(layout, []byte(testLayout), 0644); err != nil {
		t.Fatal(err)
	}
	e := New(testEnv(), nil)
	if err := e.LoadCSS(css); err != nil {
		t.Fatal(err)
	}
	if e.Root() != nil {
		t.Error("root built without a layout")
	}
	if err := e.LoadLayout(layout); err != nil {
		t.Fatal(err)
	}
	if e.Root() == nil || e.ByID("ok").View.LayoutWidth() != 40 {
		t.Error("layout not built with the loaded stylesheet")
	}
	if err := e.LoadLayout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLayout(missing) succeeded")
	}
}

func TestInspector(t *testing.T) {
	e, _ := testEngine(t, testCSS)
	lines := NewInspector().Dump(nil, e.Root())
	if len(lines) != 15 {
		t.Fatalf("got %d lines, want 15:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	want := []string{
		"Name: box#root",
		"Layout: 42x26 (wrap_content, wrap_content)",
		"Content: 42x26 at 0, 0",
		"Margin: {} Padding: {top:1 left:2}",
		`Align: left|top Selector: ""`,
		"  Name: label#ok.btn",
		"  Layout: 40x20 (exact, exact)",
		"  Content: 14x13 at 0, 0",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if lines[10] != "  Name: view#spacer" {
		t.Errorf("line 10 = %q", lines[10])
	}
}
