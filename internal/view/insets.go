package view

import "fmt"

// Edge names one side of an Insets.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeLeft
	EdgeBottom
	EdgeRight
)

var edgeNames = [...]string{"top", "left", "bottom", "right"}

func (e Edge) String() string {
	if e < EdgeTop || e > EdgeRight {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// Insets is a spacing rect in pixels. Edges that were never set stay absent:
// Has reports false and the getters return 0.
type Insets struct {
	values [4]float32
	set    uint8
}

// Has reports whether edge e has been resolved.
func (in Insets) Has(e Edge) bool {
	return in.set&(1<<e) != 0
}

// Get returns the value of e and whether it is set.
func (in Insets) Get(e Edge) (float32, bool) {
	return in.values[e], in.Has(e)
}

// Set resolves edge e to v.
func (in *Insets) Set(e Edge, v float32) {
	in.values[e] = v
	in.set |= 1 << e
}

// Merge copies every set edge of src into in, leaving the others alone.
func (in *Insets) Merge(src Insets) {
	for e := EdgeTop; e <= EdgeRight; e++ {
		if v, ok := src.Get(e); ok {
			in.Set(e, v)
		}
	}
}

// Empty reports whether no edge is set.
func (in Insets) Empty() bool {
	return in.set == 0
}

func (in Insets) Top() float32    { return in.values[EdgeTop] }
func (in Insets) Left() float32   { return in.values[EdgeLeft] }
func (in Insets) Bottom() float32 { return in.values[EdgeBottom] }
func (in Insets) Right() float32  { return in.values[EdgeRight] }

// Horizontal is Left + Right.
func (in Insets) Horizontal() float32 { return in.Left() + in.Right() }

// Vertical is Top + Bottom.
func (in Insets) Vertical() float32 { return in.Top() + in.Bottom() }

func (in Insets) String() string {
	s := "{"
	for e := EdgeTop; e <= EdgeRight; e++ {
		if v, ok := in.Get(e); ok {
			if len(s) > 1 {
				s += " "
			}
			s += fmt.Sprintf("%s:%g", e, v)
		}
	}
	return s + "}"
}
