package data

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

//go:embed monsters.yaml
var defaultMonsters []byte

// Behavior names accepted in the monster table.
const (
	BehaviorEnemy       = "enemy"
	BehaviorRandomMover = "random_mover"
)

var ErrEmptyTable = errors.New("monster table is empty")

// MonsterTemplate describes one kind of monster.
type MonsterTemplate struct {
	Name      string   `yaml:"name"`
	Glyph     string   `yaml:"glyph"`
	Color     string   `yaml:"color"`
	Behaviors []string `yaml:"behaviors"`
}

// FG resolves the template colour name, falling back to red.
func (m MonsterTemplate) FG() tcell.Color {
	if c := tcell.GetColor(m.Color); c != tcell.ColorDefault {
		return c
	}
	return tcell.ColorRed
}

// Has reports whether the template lists the behavior.
func (m MonsterTemplate) Has(behavior string) bool {
	for _, b := range m.Behaviors {
		if b == behavior {
			return true
		}
	}
	return false
}

// MonsterTable is the ordered list of spawnable monsters.
type MonsterTable struct {
	entries []MonsterTemplate
}

// LoadMonsters parses the embedded monster table.
func LoadMonsters() (*MonsterTable, error) {
	return parseMonsters(defaultMonsters, "embedded monsters.yaml")
}

// LoadMonsterFile parses a monster table from disk.
func LoadMonsterFile(path string) (*MonsterTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read monster table: %w", err)
	}
	return parseMonsters(raw, path)
}

func parseMonsters(raw []byte, source string) (*MonsterTable, error) {
	var entries []MonsterTemplate
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyTable)
	}
	for i, e := range entries {
		if e.Glyph == "" {
			return nil, fmt.Errorf("%s: entry %d (%q) has no glyph", source, i, e.Name)
		}
		for _, b := range e.Behaviors {
			if b != BehaviorEnemy && b != BehaviorRandomMover {
				return nil, fmt.Errorf("%s: entry %d (%q) has unknown behavior %q", source, i, e.Name, b)
			}
		}
	}
	return &MonsterTable{entries: entries}, nil
}

// Len returns the number of templates.
func (t *MonsterTable) Len() int { return len(t.entries) }

// At returns template i.
func (t *MonsterTable) At(i int) MonsterTemplate { return t.entries[i] }
