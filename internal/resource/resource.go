// Package resource resolves texture references used by view attributes.
package resource

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Texture is an opaque handle to a decoded image asset.
type Texture struct {
	ID     string
	Image  image.Image
	Width  int
	Height int
}

// Resolver maps a resource id or name to a texture.
type Resolver interface {
	Resolve(id any) (Texture, error)
}

// NotFoundError is returned when no asset exists for an id.
type NotFoundError struct {
	ID  any
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resource %v: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("resource %v not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Exts are tried in order when an id has no extension.
var Exts = []string{".png", ".jpg", ".jpeg"}

// Dir loads textures from image files under Root. Ids are paths relative to Root,
// with or without extension. Nothing is cached.
type Dir struct {
	Root string
}

// Resolve implements Resolver.
func (d Dir) Resolve(id any) (Texture, error) {
	name, ok := id.(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Texture{}, &NotFoundError{ID: id}
	}
	path, err := d.find(name)
	if err != nil {
		return Texture{}, &NotFoundError{ID: id, Err: err}
	}
	img, err := imgio.Open(path)
	if err != nil {
		return Texture{}, &NotFoundError{ID: id, Err: err}
	}
	b := img.Bounds()
	return Texture{ID: name, Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}

func (d Dir) find(name string) (string, error) {
	base := filepath.Join(d.Root, filepath.FromSlash(name))
	if filepath.Ext(base) != "" {
		if _, err := os.Stat(base); err != nil {
			return "", err
		}
		return base, nil
	}
	for _, ext := range Exts {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext, nil
		}
	}
	return "", os.ErrNotExist
}

// Map is an in-memory resolver keyed by the string form of the id.
type Map map[string]Texture

// Resolve implements Resolver.
func (m Map) Resolve(id any) (Texture, error) {
	t, ok := m[fmt.Sprint(id)]
	if !ok {
		return Texture{}, &NotFoundError{ID: id}
	}
	if t.ID == "" {
		t.ID = fmt.Sprint(id)
	}
	return t, nil
}
