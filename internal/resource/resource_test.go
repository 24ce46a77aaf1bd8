package resource

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		t.Fatal(err)
	}
}

func TestDirResolve(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "icons", "star.png"), 24, 16)

	d := Dir{Root: root}
	for _, id := range []string{"icons/star", "icons/star.png"} {
		tex, err := d.Resolve(id)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", id, err)
		}
		if tex.Width != 24 || tex.Height != 16 {
			t.Errorf("Resolve(%q) size = %dx%d, want 24x16", id, tex.Width, tex.Height)
		}
		if tex.Image == nil {
			t.Errorf("Resolve(%q) image is nil", id)
		}
	}
}

func TestDirResolveMissing(t *testing.T) {
	d := Dir{Root: t.TempDir()}
	for _, id := range []any{"nope", "nope.png", "", 42} {
		_, err := d.Resolve(id)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Resolve(%#v) error = %v, want *NotFoundError", id, err)
		}
	}
}

func TestMapResolve(t *testing.T) {
	m := Map{"logo": {Width: 8, Height: 4}, "7": {Width: 1, Height: 1}}
	tex, err := m.Resolve("logo")
	if err != nil {
		t.Fatal(err)
	}
	if tex.ID != "logo" || tex.Width != 8 {
		t.Errorf("Resolve(logo) = %+v", tex)
	}
	if _, err := m.Resolve(7); err != nil {
		t.Errorf("Resolve(7) error: %v", err)
	}
	if _, err := m.Resolve("missing"); err == nil {
		t.Error("Resolve(missing) succeeded, want error")
	}
}
