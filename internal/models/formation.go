package models

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultGlyph is drawn for aliens whose formation row names no glyph.
const DefaultGlyph = 'W'

// Formation is the starting layout of the swarm.
type Formation struct {
	Name      string           `yaml:"name" validate:"required"`
	Direction string           `yaml:"direction" validate:"omitempty,oneof=left right"` // initial sweep, default right
	Columns   FormationColumns `yaml:"columns"`
	Rows      []FormationRow   `yaml:"rows" validate:"required,min=1,dive"`
}

// FormationColumns places Count aliens per row starting at column Start,
// Spacing columns apart.
type FormationColumns struct {
	Start   int `yaml:"start" validate:"min=0"`
	Count   int `yaml:"count" validate:"min=1"`
	Spacing int `yaml:"spacing" validate:"min=1"`
}

// FormationRow is one line of aliens.
type FormationRow struct {
	Y     int    `yaml:"y" validate:"min=0"`
	Glyph string `yaml:"glyph" validate:"omitempty,len=1"`
}

// Spawn is an alien's starting cell and glyph.
type Spawn struct {
	Pos   Position
	Glyph rune
}

// Spawns expands the formation into one entry per alien, row by row.
func (f *Formation) Spawns() []Spawn {
	spawns := make([]Spawn, 0, len(f.Rows)*f.Columns.Count)
	for _, row := range f.Rows {
		glyph := DefaultGlyph
		if row.Glyph != "" {
			glyph = []rune(row.Glyph)[0]
		}
		for i := 0; i < f.Columns.Count; i++ {
			spawns = append(spawns, Spawn{
				Pos:   Position{X: f.Columns.Start + i*f.Columns.Spacing, Y: row.Y},
				Glyph: glyph,
			})
		}
	}
	return spawns
}

// StartDirection is +1 for a formation sweeping right, -1 for left.
func (f *Formation) StartDirection() int {
	if f.Direction == "left" {
		return -1
	}
	return 1
}

// ParseFormation decodes and validates a YAML formation.
func ParseFormation(data []byte) (*Formation, error) {
	var f Formation
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse formation YAML: %w", err)
	}
	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid formation %q: %w", f.Name, err)
	}
	return &f, nil
}

// LoadFormation reads a formation file from disk.
func LoadFormation(path string) (*Formation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFormation(data)
}

func (f *Formation) String() string {
	return fmt.Sprintf("%s: %d rows x %d columns", f.Name, len(f.Rows), f.Columns.Count)
}
