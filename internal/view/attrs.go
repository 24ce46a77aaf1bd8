package view

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"

	"viewkit/internal/resource"
	"viewkit/internal/units"
)

// Bag is a raw attribute bag as authored: numbers, unit strings, nested objects,
// alignment strings or masks, and free-form values.
type Bag map[string]any

// Clone returns a deep copy of b.
func (b Bag) Clone() (Bag, error) {
	out := make(Bag, len(b))
	if err := copier.CopyWithOption(&out, b, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}

type attrKind int

const (
	kindValue attrKind = iota
	kindSize
	kindRect
	kindAlign
	kindTextStyle
	kindTexture
	kindBackground
	kindFunc
)

// AttrType selects how a raw attribute is resolved.
type AttrType struct {
	kind attrKind
	fn   func(any) (any, error)
}

var (
	// AttrValue copies the raw value.
	AttrValue = AttrType{kind: kindValue}
	// AttrSize resolves a number or unit string to pixels (float32).
	AttrSize = AttrType{kind: kindSize}
	// AttrRect resolves an object of top/left/bottom/right sizes to Insets.
	AttrRect = AttrType{kind: kindRect}
	// AttrAlign resolves an alignment string or mask to Align.
	AttrAlign = AttrType{kind: kindAlign}
	// AttrTextStyle copies a style object, resolving only fontSize.
	AttrTextStyle = AttrType{kind: kindTextStyle}
	// AttrTexture resolves a resource id to a resource.Texture.
	AttrTexture = AttrType{kind: kindTexture}
	// AttrBackground resolves a background style object to *Background.
	AttrBackground = AttrType{kind: kindBackground}
)

// AttrFunc resolves the raw value with fn.
func AttrFunc(fn func(any) (any, error)) AttrType {
	return AttrType{kind: kindFunc, fn: fn}
}

func (t AttrType) String() string {
	switch t.kind {
	case kindSize:
		return "size"
	case kindRect:
		return "rect"
	case kindAlign:
		return "align"
	case kindTextStyle:
		return "textStyle"
	case kindTexture:
		return "texture"
	case kindBackground:
		return "background"
	case kindFunc:
		return "func"
	default:
		return "value"
	}
}

// Attrs reads a bag under one selector. Every lookup prefers key+selector over key.
// Values staged with Set or Apply become visible through View.Value once the
// parse pass commits.
type Attrs struct {
	bag      Bag
	selector string
	units    units.Resolver
	textures resource.Resolver
	staged   map[string]any
}

// Selector returns the selector this Attrs resolves under.
func (a *Attrs) Selector() string {
	return a.selector
}

// Raw returns the selector-preferred raw value of key. Nil values count as absent.
// A key present only as key+selector is still used under that selector.
func (a *Attrs) Raw(key string) (any, bool) {
	if a.selector != "" {
		if v, ok := a.bag[key+a.selector]; ok && v != nil {
			return v, true
		}
	}
	v, ok := a.bag[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Has reports whether key (or its selector variant) is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.Raw(key)
	return ok
}

// Resolve resolves key with t. The bool is false when the attribute is absent.
func (a *Attrs) Resolve(key string, t AttrType) (any, bool, error) {
	raw, ok := a.Raw(key)
	if !ok {
		return nil, false, nil
	}
	var (
		v   any
		err error
	)
	switch t.kind {
	case kindValue:
		return raw, true, nil
	case kindSize:
		v, err = a.units.Pixels(raw)
	case kindRect:
		in, isObj, rerr := a.rect(raw)
		if !isObj {
			return nil, false, nil
		}
		v, err = in, rerr
	case kindAlign:
		var al Align
		al, err = ParseAlign(raw)
		if fe, ok := err.(*AttributeFormatError); ok {
			fe.Key = key
		}
		v = al
	case kindTextStyle:
		m, isObj := asMap(raw)
		if !isObj {
			return nil, false, nil
		}
		v, err = a.textStyle(m)
	case kindTexture:
		if a.textures == nil {
			return nil, false, fmt.Errorf("attribute %q: no resource resolver", key)
		}
		v, err = a.textures.Resolve(raw)
	case kindBackground:
		m, isObj := asMap(raw)
		if !isObj {
			return nil, false, nil
		}
		v, err = a.background(key, m)
	case kindFunc:
		v, err = t.fn(raw)
	default:
		return raw, true, nil
	}
	if err != nil {
		if _, ok := err.(*AttributeFormatError); ok {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("attribute %q: %w", key, err)
	}
	return v, true, nil
}

// Size resolves key as a pixel size.
func (a *Attrs) Size(key string) (float32, bool, error) {
	v, ok, err := a.Resolve(key, AttrSize)
	if !ok || err != nil {
		return 0, false, err
	}
	return v.(float32), true, nil
}

// Insets resolves key as a spacing rect.
func (a *Attrs) Insets(key string) (Insets, bool, error) {
	v, ok, err := a.Resolve(key, AttrRect)
	if !ok || err != nil {
		return Insets{}, false, err
	}
	return v.(Insets), true, nil
}

// Align resolves key as an alignment mask.
func (a *Attrs) Align(key string) (Align, bool, error) {
	v, ok, err := a.Resolve(key, AttrAlign)
	if !ok || err != nil {
		return 0, false, err
	}
	return v.(Align), true, nil
}

// TextStyle resolves key as a text style.
func (a *Attrs) TextStyle(key string) (TextStyle, bool, error) {
	v, ok, err := a.Resolve(key, AttrTextStyle)
	if !ok || err != nil {
		return nil, false, err
	}
	return v.(TextStyle), true, nil
}

// Texture resolves key through the resource resolver.
func (a *Attrs) Texture(key string) (resource.Texture, bool, error) {
	v, ok, err := a.Resolve(key, AttrTexture)
	if !ok || err != nil {
		return resource.Texture{}, false, err
	}
	return v.(resource.Texture), true, nil
}

// String returns the raw value of key formatted as a string.
func (a *Attrs) String(key string) (string, bool) {
	v, ok := a.Raw(key)
	if !ok {
		return "", false
	}
	if s, isStr := v.(string); isStr {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Set stages a node-specific value under key.
func (a *Attrs) Set(key string, v any) {
	a.staged[key] = v
}

// Apply resolves each key with t and stages the results. Text styles merge into
// the previously staged style for the same key; other types replace it.
func (a *Attrs) Apply(t AttrType, keys ...string) error {
	for _, key := range keys {
		v, ok, err := a.Resolve(key, t)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		switch t.kind {
		case kindTextStyle:
			prev, _ := a.staged[key].(TextStyle)
			a.staged[key] = prev.Merge(v.(TextStyle))
		case kindRect:
			prev, _ := a.staged[key].(Insets)
			prev.Merge(v.(Insets))
			a.staged[key] = prev
		default:
			a.staged[key] = v
		}
	}
	return nil
}

var edgeKeys = [...]string{"top", "left", "bottom", "right"}

// rect resolves the edges present in an object. The bool is false when raw is not an object.
func (a *Attrs) rect(raw any) (Insets, bool, error) {
	m, ok := asMap(raw)
	if !ok {
		return Insets{}, false, nil
	}
	var in Insets
	for e, name := range edgeKeys {
		v, present := m[name]
		if !present || v == nil {
			continue
		}
		px, err := a.units.Pixels(v)
		if err != nil {
			return Insets{}, true, fmt.Errorf("%s: %w", name, err)
		}
		in.Set(Edge(e), px)
	}
	return in, true, nil
}

// edges resolves flattened per-edge keys such as marginTop or paddingLeft.
func (a *Attrs) edges(prefix string) (Insets, error) {
	var in Insets
	for e, name := range edgeKeys {
		key := prefix + strings.ToUpper(name[:1]) + name[1:]
		px, ok, err := a.Size(key)
		if err != nil {
			return Insets{}, err
		}
		if ok {
			in.Set(Edge(e), px)
		}
	}
	return in, nil
}

func (a *Attrs) textStyle(m map[string]any) (TextStyle, error) {
	style := make(TextStyle, len(m))
	if err := copier.CopyWithOption(&style, m, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if fs, ok := style["fontSize"]; ok && fs != nil {
		px, err := a.units.Pixels(fs)
		if err != nil {
			return nil, fmt.Errorf("fontSize: %w", err)
		}
		style["fontSize"] = px
	}
	return style, nil
}

// asMap accepts the object shapes produced by Go literals, YAML and JSON decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Bag:
		return m, true
	case TextStyle:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}
