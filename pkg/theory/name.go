package theory

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadNote reports an unparseable note name
var ErrBadNote = errors.New("bad note name")

// noteNames is indexed by pitch class, tracker style: naturals carry a
// trailing dash so every name is two characters
var noteNames = []string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

// NoteName formats a pitch class tracker style: the two-character pitch
// name followed by the octave, C-4 for middle C. Notes outside
// [0, OctaveBase) wrap first
func NoteName(pc PitchClass) string {
	return noteNames[normNote(pc.Note)] + strconv.Itoa(pc.Octave)
}

// ParseNote parses a note name: a letter A-G, an optional # or - modifier,
// then the octave number. C-4, C4 and c#3 all parse; NoteName output
// round-trips
func ParseNote(s string) (PitchClass, error) {
	if len(s) < 2 {
		return PitchClass{}, fmt.Errorf("%w: %q", ErrBadNote, s)
	}
	head := s[:1]
	if head[0] >= 'a' && head[0] <= 'z' {
		head = string(head[0] - 'a' + 'A')
	}
	rest := s[1:]
	if rest[0] == '#' || rest[0] == '-' {
		head += string(rest[0])
		rest = rest[1:]
	} else {
		head += "-"
	}

	note := -1
	for i, name := range noteNames {
		if name == head {
			note = i
			break
		}
	}
	if note < 0 {
		return PitchClass{}, fmt.Errorf("%w: %q", ErrBadNote, s)
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return PitchClass{}, fmt.Errorf("%w: %q", ErrBadNote, s)
	}
	return PitchClass{Note: note, Octave: octave}, nil
}
