package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("Load = %+v, want defaults", p)
	}
}

func TestLoadKeepsDefaultsForAbsentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewkit.yaml")
	data := "density: 2.5\nwindow:\n  title: demo\nshow_hit_areas: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Density != 2.5 || p.Window.Title != "demo" || !p.ShowHitAreas {
		t.Errorf("Load = %+v", p)
	}
	if p.Window.Width != 960 || p.AssetsDir != "assets" {
		t.Errorf("defaults lost: %+v", p)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"syntax.yaml":  "density: [",
		"density.yaml": "density: -1\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%s) succeeded, want error", name)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewkit.yaml")
	want := Default()
	want.Density = 2
	want.Stylesheet = "assets/style.css"
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Load after Save = %+v, want %+v", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{"VIEWKIT_DENSITY": "3", "VIEWKIT_LAYOUT": "other.yaml"}
	p, err := ApplyEnv(Default(), func(k string) string { return env[k] })
	if err != nil {
		t.Fatal(err)
	}
	if p.Density != 3 || p.Layout != "other.yaml" || p.AssetsDir != "assets" {
		t.Errorf("ApplyEnv = %+v", p)
	}
	env["VIEWKIT_DENSITY"] = "zero"
	if _, err := ApplyEnv(Default(), func(k string) string { return env[k] }); err == nil {
		t.Error("ApplyEnv accepted a bad density")
	}
}
