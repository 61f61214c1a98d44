package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TurnRecord is a single turn in a headless run.
type TurnRecord struct {
	Turn      int        `yaml:"turn"`
	Action    string     `yaml:"action"`
	Player    Position   `yaml:"player"`
	Destroyed []Position `yaml:"destroyed,omitempty"`
	Reversed  bool       `yaml:"reversed,omitempty"`
	Aliens    int        `yaml:"aliens"`
	Bullets   int        `yaml:"bullets"`
	Score     int        `yaml:"score"`
	Status    Status     `yaml:"status"`
}

// Transcript is the full record of a headless run.
type Transcript struct {
	Formation string       `yaml:"formation"`
	Bounds    Bounds       `yaml:"bounds"`
	Entries   []TurnRecord `yaml:"entries"`
	Score     int          `yaml:"score"`
	Status    Status       `yaml:"status"`
}

// Marshal renders the transcript as YAML.
func (t *Transcript) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// Save writes the transcript to path, creating parent directories.
func (t *Transcript) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := t.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
