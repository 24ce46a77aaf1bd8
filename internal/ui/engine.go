package ui

import (
	"os"

	"viewkit/internal/host"
	"viewkit/internal/logger"
	"viewkit/internal/view"
)

// HoverSelector is the selector a hovered view switches to.
const HoverSelector = "Hover"

// Engine holds the current stylesheet and layout, builds the view tree from them
// and keeps it in sync: rebuilds after either changes, forwards per-frame updates
// and moves the hover selector between views.
type Engine struct {
	env      view.Env
	log      *logger.Logger
	registry Registry
	sheet    *Stylesheet
	layout   *Node
	root     *Element
	byNode   map[host.Node]*Element
	byID     map[string]*Element
	hovered  *Element
}

// New creates an engine with no stylesheet and no layout. log may be nil.
func New(env view.Env, log *logger.Logger) *Engine {
	return &Engine{env: env, log: log, registry: DefaultRegistry()}
}

// Register adds or replaces a node type constructor.
func (e *Engine) Register(typ string, c Constructor) {
	e.registry[typ] = c
}

func (e *Engine) logf(format string, args ...any) {
	if e.log != nil {
		e.log.Logf(format, args...)
	}
}

// LoadCSS loads and parses a stylesheet from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.logf("stylesheet %s: %d rules", path, len(sheet.Rules))
	return e.SetStylesheet(sheet)
}

// SetStylesheet sets the stylesheet directly and rebuilds the layout, if any.
func (e *Engine) SetStylesheet(sheet *Stylesheet) error {
	e.sheet = sheet
	return e.rebuild()
}

// LoadLayout loads a YAML layout document from path and builds it.
func (e *Engine) LoadLayout(path string) error {
	doc, err := LoadLayout(path)
	if err != nil {
		return err
	}
	return e.SetLayout(doc)
}

// SetLayout replaces the layout document and builds it.
func (e *Engine) SetLayout(doc *Node) error {
	e.layout = doc
	return e.rebuild()
}

// rebuild discards the view tree and builds a new one. On error the previous
// tree stays in place.
func (e *Engine) rebuild() error {
	if e.layout == nil {
		return nil
	}
	root, err := Build(e.layout, e.env, e.sheet, e.registry)
	if err != nil {
		e.logf("build failed: %v", err)
		return err
	}
	e.root = root
	e.hovered = nil
	e.byNode = make(map[host.Node]*Element)
	e.byID = make(map[string]*Element)
	root.Walk(func(el *Element) {
		e.byNode[el.View.Node()] = el
		if el.Node.ID != "" {
			e.byID[el.Node.ID] = el
		}
	})
	e.logf("layout built: %d views", len(e.byNode))
	return nil
}

// Root returns the root element, or nil before a layout is built.
func (e *Engine) Root() *Element {
	return e.root
}

// ByID returns the element whose layout node has id.
func (e *Engine) ByID(id string) *Element {
	return e.byID[id]
}

// Update runs the per-frame hook of every view.
func (e *Engine) Update() {
	if e.root == nil {
		return
	}
	e.root.Walk(func(el *Element) { el.View.Update() })
}

// Hover moves the hover selector to the view owning n. A nil or unknown node
// clears the hover.
func (e *Engine) Hover(n host.Node) {
	var next *Element
	if n != nil {
		next = e.byNode[n]
	}
	if next == e.hovered {
		return
	}
	if e.hovered != nil {
		e.SetSelector(e.hovered, "")
		e.hovered = nil
	}
	if next != nil && e.SetSelector(next, HoverSelector) {
		e.hovered = next
	}
}

// Hovered returns the element currently in the hover selector, or nil.
func (e *Engine) Hovered() *Element {
	return e.hovered
}

// SetSelector switches el to selector and re-renders its ancestors, whose
// measurement depends on el's size. Errors are logged, leave el unchanged and
// report false.
func (e *Engine) SetSelector(el *Element, selector string) bool {
	if err := el.View.SetSelector(selector); err != nil {
		e.logf("%v", err)
		return false
	}
	for p := el.Parent; p != nil; p = p.Parent {
		p.View.Invalidate()
	}
	return true
}
