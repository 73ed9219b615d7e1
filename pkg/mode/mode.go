// Package mode provides the catalog of named modes: interval vectors
// addressed by name, built in or loaded from YAML catalog files
package mode

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by catalog construction and lookup
var (
	ErrBadMode     = errors.New("bad mode")
	ErrUnknownMode = errors.New("unknown mode")
)

// Mode names an interval vector, the semitone steps between adjacent
// scale notes
type Mode struct {
	Name  string `yaml:"name"`
	Steps []int  `yaml:"steps"`
}

// Catalog is an ordered, name-addressed collection of modes. Names
// compare case-insensitively; adding a mode under an existing name
// replaces it in place
type Catalog struct {
	modes []Mode
	index map[string]int
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Builtin returns the standard catalog: the seven diatonic modes plus the
// common minor, pentatonic, blues, whole-tone and chromatic vectors. Every
// builtin's steps sum to a full octave
func Builtin() *Catalog {
	c := NewCatalog()
	for _, m := range []Mode{
		{Name: "major", Steps: []int{2, 2, 1, 2, 2, 2, 1}},
		{Name: "ionian", Steps: []int{2, 2, 1, 2, 2, 2, 1}},
		{Name: "dorian", Steps: []int{2, 1, 2, 2, 2, 1, 2}},
		{Name: "phrygian", Steps: []int{1, 2, 2, 2, 1, 2, 2}},
		{Name: "lydian", Steps: []int{2, 2, 2, 1, 2, 2, 1}},
		{Name: "mixolydian", Steps: []int{2, 2, 1, 2, 2, 1, 2}},
		{Name: "minor", Steps: []int{2, 1, 2, 2, 1, 2, 2}},
		{Name: "aeolian", Steps: []int{2, 1, 2, 2, 1, 2, 2}},
		{Name: "locrian", Steps: []int{1, 2, 2, 1, 2, 2, 2}},
		{Name: "harmonic minor", Steps: []int{2, 1, 2, 2, 1, 3, 1}},
		{Name: "melodic minor", Steps: []int{2, 1, 2, 2, 2, 2, 1}},
		{Name: "major pentatonic", Steps: []int{2, 2, 3, 2, 3}},
		{Name: "minor pentatonic", Steps: []int{3, 2, 2, 3, 2}},
		{Name: "blues", Steps: []int{3, 2, 1, 1, 3, 2}},
		{Name: "whole tone", Steps: []int{2, 2, 2, 2, 2, 2}},
		{Name: "chromatic", Steps: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	} {
		c.put(m)
	}
	return c
}

// Validate checks that a mode is usable: a non-empty name, at least one
// step, and no step below a semitone
func Validate(m Mode) error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty name", ErrBadMode)
	}
	if len(m.Steps) == 0 {
		return fmt.Errorf("%w: %q has no steps", ErrBadMode, m.Name)
	}
	for _, step := range m.Steps {
		if step < 1 {
			return fmt.Errorf("%w: %q has step %d", ErrBadMode, m.Name, step)
		}
	}
	return nil
}

// Add validates m and inserts it
func (c *Catalog) Add(m Mode) error {
	if err := Validate(m); err != nil {
		return err
	}
	c.put(m)
	return nil
}

func (c *Catalog) put(m Mode) {
	key := strings.ToLower(m.Name)
	if i, ok := c.index[key]; ok {
		c.modes[i] = m
		return
	}
	c.index[key] = len(c.modes)
	c.modes = append(c.modes, m)
}

// Get looks a mode up by name
func (c *Catalog) Get(name string) (Mode, error) {
	if i, ok := c.index[strings.ToLower(name)]; ok {
		return c.modes[i], nil
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Names returns the mode names in insertion order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.modes))
	for i, m := range c.modes {
		names[i] = m.Name
	}
	return names
}

// Modes returns the modes in insertion order
func (c *Catalog) Modes() []Mode {
	return append([]Mode(nil), c.modes...)
}

// Len returns the number of modes in the catalog
func (c *Catalog) Len() int {
	return len(c.modes)
}

// Merge copies every mode of other into c, replacing same-named modes
func (c *Catalog) Merge(other *Catalog) {
	for _, m := range other.modes {
		c.put(m)
	}
}
