package units

import (
	"errors"
	"testing"
)

func TestDensityPixels(t *testing.T) {
	d := Density{Scale: 2}
	tests := []struct {
		in   any
		want float32
	}{
		{10, 10},
		{int64(7), 7},
		{float64(2.5), 2.5},
		{"12", 12},
		{"12px", 12},
		{" 12PX ", 12},
		{"12dp", 24},
		{"1.5dip", 3},
		{"-4dp", -8},
	}
	for _, tt := range tests {
		got, err := d.Pixels(tt.in)
		if err != nil {
			t.Errorf("Pixels(%#v) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Pixels(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDensityPixelEquivalentInputs(t *testing.T) {
	for _, in := range []any{10, "10px", "10dp", "10"} {
		got, err := DefaultDensity.Pixels(in)
		if err != nil {
			t.Fatalf("Pixels(%#v) error: %v", in, err)
		}
		if got != 10 {
			t.Errorf("Pixels(%#v) = %v, want 10", in, got)
		}
	}
}

func TestDensityUnresolved(t *testing.T) {
	for _, in := range []any{"10em", "abc", "", "10 px", "10px 4px", true, nil, []int{1}} {
		_, err := DefaultDensity.Pixels(in)
		var ue *UnresolvedUnitError
		if !errors.As(err, &ue) {
			t.Errorf("Pixels(%#v) error = %v, want *UnresolvedUnitError", in, err)
		}
	}
}

func TestUnresolvedUnitErrorNamesUnit(t *testing.T) {
	_, err := DefaultDensity.Pixels("3vw")
	var ue *UnresolvedUnitError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UnresolvedUnitError", err)
	}
	if ue.Unit != "vw" {
		t.Errorf("Unit = %q, want %q", ue.Unit, "vw")
	}
}

func TestZeroScaleFallsBackToOne(t *testing.T) {
	got, err := Density{}.Pixels("5dp")
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("Pixels = %v, want 5", got)
	}
}
