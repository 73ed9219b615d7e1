// Package theory implements tempered pitch-class arithmetic: key numbers,
// integer frequencies, and the interval-vector operations behind keys,
// scale degrees and modal transposition
package theory

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// OctaveBase is the number of pitch classes in a tempered octave
const OctaveBase = 12

// refKeynum is the tuning reference, A-4 = 440Hz
const refKeynum = 69

// PitchClass is a pitch class paired with its octave
type PitchClass struct {
	Note   int // 0-11 (0 = C, 1 = C#, ...)
	Octave int // octave number, C-4 = middle C = keynum 60
}

// normNote reduces an arbitrary note integer into [0, OctaveBase) with
// floored division, so negatives wrap: -1 becomes 11
func normNote(n int) int {
	n %= OctaveBase
	if n < 0 {
		n += OctaveBase
	}
	return n
}

// NewPitchClass normalizes an arbitrary note integer into [0, OctaveBase)
// and pairs it with the octave. Negative notes wrap, so -1 becomes 11
func NewPitchClass(note, octave int) PitchClass {
	return PitchClass{Note: normNote(note), Octave: octave}
}

// Keynum returns the absolute key number, note + OctaveBase*(octave+1).
// C-4 (note 0, octave 4) is 60
func (pc PitchClass) Keynum() int {
	return pc.Note + OctaveBase*(pc.Octave+1)
}

// FromKeynum recovers the pitch class of a key number. The division is
// floored, so every int recovers a normalized note and Keynum round-trips:
// key number 0 is C in octave -1, key number -1 is B in octave -2
func FromKeynum(keynum int) PitchClass {
	note := normNote(keynum)
	return PitchClass{Note: note, Octave: (keynum-note)/OctaveBase - 1}
}

// Frequency returns the tempered frequency in Hz, truncated to an integer.
// Keynum 69 = A-4 = 440Hz (A440 standard tuning). The semitone offset from
// the reference is taken as a magnitude, so key numbers below 69 mirror the
// frequency of the pitch the same distance above 69
func (pc PitchClass) Frequency() int {
	offset := math.Abs(float64(pc.Keynum() - refKeynum))
	return int(440.0 * math.Pow(2.0, offset/12.0))
}

// AbsDiff returns the absolute key-number distance between two pitch classes
func AbsDiff(a, b PitchClass) int {
	d := a.Keynum() - b.Keynum()
	if d < 0 {
		return -d
	}
	return d
}

// DiffWithDirection returns the key-number distance from a to b together
// with the melodic direction: Up when b is higher, Down when b is lower,
// Oblique when the key numbers are equal
func DiffWithDirection(a, b PitchClass) (int, Direction) {
	ka, kb := a.Keynum(), b.Keynum()
	switch {
	case kb > ka:
		return kb - ka, Up
	case kb < ka:
		return ka - kb, Down
	}
	return 0, Oblique
}

// Direction is melodic motion between two pitches. The set is closed:
// Oblique, Up and Down are the only values
type Direction uint8

const (
	Oblique Direction = iota // no motion
	Up                       // rising
	Down                     // falling
)

// ErrBadDirection reports a Direction value outside the closed set
var ErrBadDirection = errors.New("bad direction")

// String returns the lowercase direction name
func (d Direction) String() string {
	switch d {
	case Oblique:
		return "oblique"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection parses a direction name, case-insensitively
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "oblique":
		return Oblique, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Oblique, fmt.Errorf("%w: %q", ErrBadDirection, s)
}
