package ui

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"viewkit/internal/view"
)

// Node is one element of a layout document: a view type, optional class and id
// for stylesheet matching, inline attributes and children.
type Node struct {
	Type     string         `yaml:"type"`            // "box", "label", "image", "view"
	Class    string         `yaml:"class,omitempty"` // e.g. "menu" for .menu; several separated by spaces
	ID       string         `yaml:"id,omitempty"`    // e.g. "main" for #main
	Text     string         `yaml:"text,omitempty"`  // shorthand for attrs.text
	Attrs    map[string]any `yaml:"attrs,omitempty"`
	Children []*Node        `yaml:"children,omitempty"`
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// bag returns the inline attributes with the text shorthand folded in.
func (n *Node) bag() view.Bag {
	out := make(view.Bag, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		out[k] = v
	}
	if n.Text != "" {
		if _, ok := out["text"]; !ok {
			out["text"] = n.Text
		}
	}
	return out
}

// ParseLayout decodes a YAML layout document.
func ParseLayout(data []byte) (*Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if root.Type == "" {
		return nil, fmt.Errorf("layout: root node has no type")
	}
	return &root, nil
}

// LoadLayout reads and decodes a YAML layout document from path.
func LoadLayout(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return ParseLayout(data)
}
