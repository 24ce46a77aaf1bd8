package ui

import (
	"reflect"
	"testing"

	"viewkit/internal/view"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* panels */
.panel, #main {
	layout-width: 120;
	padding-left: 4px;
	align: right|bottom;
}
.btn:hover {
	background-fill-color: "#ff0000";
	background-type: roundedRect;
}
`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(sheet.Rules))
	}
	want := view.Bag{"layoutWidth": 120.0, "paddingLeft": "4px", "align": "right|bottom"}
	for i, sel := range []string{".panel", "#main"} {
		r := sheet.Rules[i]
		if r.Selector != sel || r.State != "" {
			t.Errorf("rule %d = %q/%q, want %q", i, r.Selector, r.State, sel)
		}
		if !reflect.DeepEqual(r.Attrs, want) {
			t.Errorf("rule %d attrs = %v, want %v", i, r.Attrs, want)
		}
	}
	hover := sheet.Rules[2]
	if hover.Selector != ".btn" || hover.State != "Hover" {
		t.Errorf("hover rule = %q/%q", hover.Selector, hover.State)
	}
	bg, _ := hover.Attrs["background"].(map[string]any)
	if bg["fillColor"] != "#ff0000" || bg["type"] != "roundedRect" {
		t.Errorf("background = %v", hover.Attrs["background"])
	}
}

func TestParseCSSSkipsUnsupportedSelectors(t *testing.T) {
	sheet, err := ParseCSS(`div .a { x: 1 } .a .b { y: 2 } .ok { z: 3 }`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Rules) != 1 || sheet.Rules[0].Selector != ".ok" {
		t.Fatalf("rules = %+v, want only .ok", sheet.Rules)
	}
	if sheet.Rules[0].Attrs["z"] != 3.0 {
		t.Errorf("z = %v, want 3", sheet.Rules[0].Attrs["z"])
	}
}

func TestParseSelectorState(t *testing.T) {
	for in, want := range map[string]string{
		".a:hover":        "Hover",
		"#b:focus-within": "FocusWithin",
		".c":              "",
	} {
		r, ok := parseSelector(in)
		if !ok {
			t.Errorf("parseSelector(%q) rejected", in)
			continue
		}
		if r.State != want {
			t.Errorf("parseSelector(%q).State = %q, want %q", in, r.State, want)
		}
	}
	for _, in := range []string{"p", ".", ".a:b:c", ".a.b"} {
		if _, ok := parseSelector(in); ok {
			t.Errorf("parseSelector(%q) accepted", in)
		}
	}
}

func TestCamel(t *testing.T) {
	for in, want := range map[string]string{
		"layout-width":          "layoutWidth",
		"fill":                  "fill",
		"background-fill-color": "backgroundFillColor",
		" margin-top ":          "marginTop",
	} {
		if got := camel(in); got != want {
			t.Errorf("camel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetPropNestsObjectKeys(t *testing.T) {
	attrs := view.Bag{}
	setProp(attrs, "textStyleFontSize", 18.0)
	setProp(attrs, "textStyleFill", "white")
	setProp(attrs, "backgrounds", 1.0)
	want := view.Bag{
		"textStyle":   map[string]any{"fontSize": 18.0, "fill": "white"},
		"backgrounds": 1.0,
	}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("attrs = %v, want %v", attrs, want)
	}
}

func TestStylesheetMerge(t *testing.T) {
	sheet := &Stylesheet{Rules: []Rule{
		{Selector: ".btn", Attrs: view.Bag{"layoutWidth": 40.0, "background": map[string]any{"type": "rect", "fillColor": "blue"}}},
		{Selector: ".big", Attrs: view.Bag{"layoutWidth": 80.0}},
		{Selector: ".btn", State: "Hover", Attrs: view.Bag{"layoutWidth": 60.0}},
		{Selector: "#other", Attrs: view.Bag{"layoutHeight": 1.0}},
	}}
	got := sheet.Merge("btn big", "ok", view.Bag{
		"background": map[string]any{"fillColor": "red"},
		"align":      "center",
	})
	want := view.Bag{
		"layoutWidth":      80.0,
		"layoutWidthHover": 60.0,
		"background":       map[string]any{"type": "rect", "fillColor": "red"},
		"align":            "center",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestNilStylesheet(t *testing.T) {
	var sheet *Stylesheet
	got := sheet.Merge("a", "b", view.Bag{"k": 1})
	if !reflect.DeepEqual(got, view.Bag{"k": 1}) {
		t.Errorf("Merge on nil sheet = %v", got)
	}
}
