package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog records statistics gathered during one session.
type RunLog struct {
	Seed            int64     `json:"seed"`
	EndedAt         time.Time `json:"ended_at"`
	Turns           int       `json:"turns"`
	Moves           int       `json:"moves"`
	Blocked         int       `json:"blocked"`
	MonstersRemoved int       `json:"monsters_removed"`
	MonstersLeft    int       `json:"monsters_left"`
}

// newRunLog snapshots the session counters.
func newRunLog(s *Session, now time.Time) RunLog {
	return RunLog{
		Seed:            s.Status().Seed,
		EndedAt:         now.UTC(),
		Turns:           s.Stats.Turns,
		Moves:           s.Stats.Moves,
		Blocked:         s.Stats.Blocked,
		MonstersRemoved: s.Stats.MonstersRemoved,
		MonstersLeft:    s.Monsters(),
	}
}

// saveRunLog appends the run as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// runLogDir returns $XDG_DATA_HOME/dungeon-crawler, defaulting to
// ~/.local/share/dungeon-crawler.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeon-crawler"), nil
}
