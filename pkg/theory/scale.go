package theory

import (
	"errors"
	"fmt"
)

// Errors reported by ModalTransposition
var (
	ErrEmptySteps = errors.New("empty step vector")
	ErrNotInKey   = errors.New("pitch class not in key")
	ErrBadCount   = errors.New("negative step count")
)

// ModeNotesAboveBase accumulates an interval vector upward from the pitch
// class of pc, emitting each running sum reduced into [0, OctaveBase). The
// base note itself is not emitted; the result has one element per step.
// Steps may be negative; a descending sum wraps the way NewPitchClass wraps
func ModeNotesAboveBase(pc PitchClass, steps []int) []int {
	notes := make([]int, 0, len(steps))
	sum := pc.Note
	for _, step := range steps {
		sum += step
		notes = append(notes, normNote(sum))
	}
	return notes
}

// NotesOfKey returns the normal form of a key: the tonic's note first,
// then each accumulated step reduced into [0, OctaveBase), len(steps)+1
// elements in all. E major (tonic note 4, steps 2 2 1 2 2 2 1) yields
// 4 6 8 9 11 1 3 4; a full octave of steps lands back on the tonic's note
func NotesOfKey(tonic PitchClass, steps []int) []int {
	notes := make([]int, 0, len(steps)+1)
	notes = append(notes, tonic.Note)
	sum := tonic.Note
	for _, step := range steps {
		sum += step
		notes = append(notes, normNote(sum))
	}
	return notes
}

// ScaleDegree returns the 1-based position of pc's note within the key
// built from tonic and steps, or 0 when the note does not occur. The scan
// covers the whole key and the last match wins: in a key whose steps sum
// to a full octave the tonic's note occurs first and last, and its degree
// is reported as the final position, not 1
func ScaleDegree(pc, tonic PitchClass, steps []int) int {
	degree := 0
	for i, note := range NotesOfKey(tonic, steps) {
		if note == pc.Note {
			degree = i + 1
		}
	}
	return degree
}

// ModalTransposition moves pc by numsteps scale degrees through the key
// built from tonic and steps and returns the resulting key number. The
// walk runs over the interval vector itself rather than the materialized
// key, so accumulated distances stay exact across octave boundaries.
// Up reads the step leaving the current degree and then advances; Down
// retreats to the previous degree first and then reads, so both
// directions accumulate the steps between the degrees crossed. Oblique
// motion returns pc's key number unchanged, as does numsteps 0.
//
// pc must be a member of the key, steps must be non-empty and numsteps
// must be non-negative; otherwise ErrNotInKey, ErrEmptySteps or
// ErrBadCount is returned
func ModalTransposition(pc, tonic PitchClass, steps []int, numsteps int, dir Direction) (int, error) {
	if len(steps) == 0 {
		return 0, ErrEmptySteps
	}
	if numsteps < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadCount, numsteps)
	}
	switch dir {
	case Oblique, Up, Down:
	default:
		return 0, fmt.Errorf("%w: %s", ErrBadDirection, dir)
	}

	degree := ScaleDegree(pc, tonic, steps)
	if degree == 0 {
		return 0, fmt.Errorf("%w: %s against tonic %s", ErrNotInKey, NoteName(pc), NoteName(tonic))
	}

	// The key holds one more position than the vector, so a tonic matched
	// at the wrapped final position folds back onto index 0.
	idx := (degree - 1) % len(steps)

	offset := 0
	for i := 0; i < numsteps; i++ {
		switch dir {
		case Up:
			offset += steps[idx]
			idx = (idx + 1) % len(steps)
		case Down:
			idx = (idx + len(steps) - 1) % len(steps)
			offset += steps[idx]
		case Oblique:
		}
	}

	keynum := pc.Keynum()
	switch dir {
	case Up:
		keynum += offset
	case Down:
		keynum -= offset
	case Oblique:
	}
	return keynum, nil
}
