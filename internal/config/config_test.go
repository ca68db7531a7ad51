package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPath(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("empty path produced %d keys", len(m))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	body := "seed: 99\noctaves: 4\ngradient_dir: assets\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m["seed"] != "99" || m["octaves"] != "4" || m["gradient_dir"] != "assets" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestMerge(t *testing.T) {
	base := map[string]string{"seed": "1", "w": "64"}
	out := Merge(base, []string{"seed=2", "h=32", "broken", "=novalue"})

	if out["seed"] != "2" {
		t.Fatalf("override not applied: %v", out)
	}
	if out["w"] != "64" || out["h"] != "32" {
		t.Fatalf("unexpected map: %v", out)
	}
	if _, ok := out[""]; ok {
		t.Fatal("empty key accepted")
	}
}

func TestMergeNilBase(t *testing.T) {
	out := Merge(nil, []string{"a=b"})
	if out["a"] != "b" {
		t.Fatalf("unexpected map: %v", out)
	}
}
