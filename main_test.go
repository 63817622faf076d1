package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMonsters(t *testing.T) {
	builtin, err := loadMonsters("")
	if err != nil {
		t.Fatalf("built-in table: %v", err)
	}
	if builtin.Len() == 0 {
		t.Fatal("built-in table is empty")
	}

	path := filepath.Join(t.TempDir(), "monsters.yaml")
	body := "- name: bat\n  glyph: b\n  color: gray\n  behaviors: [enemy, random_mover]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	custom, err := loadMonsters(path)
	if err != nil {
		t.Fatalf("loadMonsters(%q): %v", path, err)
	}
	if custom.Len() != 1 || custom.At(0).Name != "bat" {
		t.Errorf("unexpected table: %d entries, first %q", custom.Len(), custom.At(0).Name)
	}

	if _, err := loadMonsters(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
