package ui

import (
	"strings"
	"unicode"

	"viewkit/internal/view"
)

// ObjectKeys are attributes whose value is an object. A camel-cased property
// starting with one of them (backgroundFillColor) lands in that object.
var ObjectKeys = []string{"background", "textStyle"}

// Rule is a single stylesheet rule: a .class or #id target, an optional state
// and the attributes it sets.
type Rule struct {
	Selector string   // e.g. ".panel" or "#menu"
	State    string   // selector suffix from a :state pseudo-class, e.g. "Hover"
	Attrs    view.Bag // attribute bag fragment, keys without the state suffix
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// matches reports whether rule applies to a node with class and id.
func (r Rule) matches(class, id string) bool {
	sel := r.Selector
	switch {
	case len(sel) > 1 && sel[0] == '.':
		for _, c := range strings.Fields(class) {
			if c == sel[1:] {
				return true
			}
		}
	case len(sel) > 1 && sel[0] == '#':
		return id != "" && id == sel[1:]
	}
	return false
}

// Bag merges every rule matching class or id into one attribute bag. State rules
// contribute suffixed keys so the view's selector picks them up.
func (s *Stylesheet) Bag(class, id string) view.Bag {
	merged := make(view.Bag)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		if !rule.matches(class, id) {
			continue
		}
		for k, v := range rule.Attrs {
			mergeAttr(merged, k+rule.State, v)
		}
	}
	return merged
}

// Merge lays inline attributes over the stylesheet bag for class and id.
func (s *Stylesheet) Merge(class, id string, inline view.Bag) view.Bag {
	out := s.Bag(class, id)
	for k, v := range inline {
		mergeAttr(out, k, v)
	}
	return out
}

// mergeAttr sets dst[key], merging one level deep when both sides are objects.
func mergeAttr(dst view.Bag, key string, v any) {
	src, srcObj := object(v)
	prev, prevObj := object(dst[key])
	if !srcObj || !prevObj {
		dst[key] = v
		return
	}
	out := make(map[string]any, len(prev)+len(src))
	for k, pv := range prev {
		out[k] = pv
	}
	for k, sv := range src {
		out[k] = sv
	}
	dst[key] = out
}

func object(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case view.Bag:
		return m, true
	}
	return nil, false
}

// camel turns a kebab-case property into the attribute key: layout-width -> layoutWidth.
func camel(prop string) string {
	parts := strings.Split(strings.TrimSpace(prop), "-")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 || b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// setProp stores a declaration into attrs, nesting object-prefixed keys.
func setProp(attrs view.Bag, key string, v any) {
	for _, obj := range ObjectKeys {
		rest, ok := strings.CutPrefix(key, obj)
		if !ok || rest == "" || !unicode.IsUpper([]rune(rest)[0]) {
			continue
		}
		field := strings.ToLower(rest[:1]) + rest[1:]
		m, _ := attrs[obj].(map[string]any)
		if m == nil {
			m = make(map[string]any)
			attrs[obj] = m
		}
		m[field] = v
		return
	}
	attrs[key] = v
}
