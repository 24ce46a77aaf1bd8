// Package fonts locates font files under the assets directory for the window
// renderer.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions treated as font files.
var Exts = []string{".ttf", ".otf"}

// Dir returns the fonts directory under assets.
func Dir(assets string) string {
	return filepath.Join(assets, "fonts")
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf"),
// using forward slashes. A missing dir yields no files.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find searches dir for a font whose relative path contains name, ignoring case,
// spaces, dashes and underscores. "Inter" matches "Inter/Inter-Regular.ttf".
// When several files match, one containing "regular" wins. It returns the full
// path, or os.ErrNotExist.
func Find(dir, name string) (string, error) {
	norm := normalize(strings.TrimSuffix(name, filepath.Ext(name)))
	if norm == "" {
		return "", os.ErrNotExist
	}
	list, err := ScanDir(dir)
	if err != nil {
		return "", err
	}
	var match string
	for _, rel := range list {
		if !strings.Contains(normalize(rel), norm) {
			continue
		}
		if strings.Contains(strings.ToLower(rel), "regular") {
			return filepath.Join(dir, filepath.FromSlash(rel)), nil
		}
		if match == "" {
			match = rel
		}
	}
	if match == "" {
		return "", os.ErrNotExist
	}
	return filepath.Join(dir, filepath.FromSlash(match)), nil
}
