package food

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverrides(t *testing.T) {
	// The catalog is a package global, so restore it when done to keep the
	// other tests honest.
	origRoti := catalog["roti"]
	origLen := len(catalogOrder)
	defer func() {
		catalog["roti"] = origRoti
		for _, name := range catalogOrder[origLen:] {
			delete(catalog, name)
		}
		catalogOrder = catalogOrder[:origLen]
	}()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	overrides := "roti: 90\nprotein shake (1 glass): 120\n"
	if err := os.WriteFile(path, []byte(overrides), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := LoadOverrides(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if catalog["roti"] != 90 {
		t.Errorf("expected roti override 90, got %d", catalog["roti"])
	}
	if catalog["protein shake (1 glass)"] != 120 {
		t.Errorf("expected new label added, got %d", catalog["protein shake (1 glass)"])
	}
	if len(catalogOrder) != origLen+1 {
		t.Errorf("expected exactly one appended key, got %d new", len(catalogOrder)-origLen)
	}

	got := Resolve("2 roti")
	if got.Kcal != 180 {
		t.Errorf("expected overridden value used by Resolve (90 * 2), got %d", got.Kcal)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadOverridesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("not: [valid"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := LoadOverrides(path); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
