package theory

import (
	"errors"
	"testing"
)

func TestKeynum(t *testing.T) {
	tests := []struct {
		name   string
		pc     PitchClass
		expect int
	}{
		{"middle C", PitchClass{Note: 0, Octave: 4}, 60},
		{"E-4", PitchClass{Note: 4, Octave: 4}, 64},
		{"A-4 reference", PitchClass{Note: 9, Octave: 4}, 69},
		{"C-0", PitchClass{Note: 0, Octave: 0}, 12},
		{"B-8", PitchClass{Note: 11, Octave: 8}, 119},
		{"octave -1 bottom", PitchClass{Note: 0, Octave: -1}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pc.Keynum(); got != tc.expect {
				t.Errorf("Keynum(%v) = %d, want %d", tc.pc, got, tc.expect)
			}
		})
	}
}

func TestFromKeynumRoundTrip(t *testing.T) {
	for octave := 0; octave <= 8; octave++ {
		for note := 0; note < OctaveBase; note++ {
			pc := PitchClass{Note: note, Octave: octave}
			if got := FromKeynum(pc.Keynum()); got != pc {
				t.Fatalf("FromKeynum(Keynum(%v)) = %v", pc, got)
			}
		}
	}

	// Key numbers below an octave belong to octave -1.
	for keynum := 0; keynum < OctaveBase; keynum++ {
		pc := FromKeynum(keynum)
		if pc.Octave != -1 || pc.Note != keynum {
			t.Errorf("FromKeynum(%d) = %v, want note %d octave -1", keynum, pc, keynum)
		}
		if pc.Keynum() != keynum {
			t.Errorf("Keynum(FromKeynum(%d)) = %d", keynum, pc.Keynum())
		}
	}

	// Negative key numbers floor into lower octaves and round-trip too.
	for keynum := -3 * OctaveBase; keynum < 0; keynum++ {
		pc := FromKeynum(keynum)
		if pc.Note < 0 || pc.Note >= OctaveBase {
			t.Errorf("FromKeynum(%d).Note = %d, not normalized", keynum, pc.Note)
		}
		if pc.Keynum() != keynum {
			t.Errorf("Keynum(FromKeynum(%d)) = %d", keynum, pc.Keynum())
		}
	}
}

func TestFromKeynumNegative(t *testing.T) {
	tests := []struct {
		keynum int
		expect PitchClass
	}{
		{-1, PitchClass{Note: 11, Octave: -2}},
		{-12, PitchClass{Note: 0, Octave: -2}},
		{-13, PitchClass{Note: 11, Octave: -3}},
		{-24, PitchClass{Note: 0, Octave: -3}},
	}

	for _, tc := range tests {
		if got := FromKeynum(tc.keynum); got != tc.expect {
			t.Errorf("FromKeynum(%d) = %v, want %v", tc.keynum, got, tc.expect)
		}
	}
}

func TestNewPitchClassNormalizes(t *testing.T) {
	tests := []struct {
		note   int
		expect int
	}{
		{0, 0},
		{11, 11},
		{12, 0},
		{13, 1},
		{24, 0},
		{-1, 11},
		{-12, 0},
		{-13, 11},
	}

	for _, tc := range tests {
		if got := NewPitchClass(tc.note, 4).Note; got != tc.expect {
			t.Errorf("NewPitchClass(%d, 4).Note = %d, want %d", tc.note, got, tc.expect)
		}
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		name   string
		keynum int
		expect int
	}{
		{"reference A-4", 69, 440},
		{"one octave up", 81, 880},
		{"semitone above", 70, 466},
		{"fourth above", 74, 587},
		{"middle C", 60, 739},
		{"semitone below mirrors above", 68, 466},
		{"octave below mirrors above", 57, 880},
		{"two octaves out", 93, 1760},
		{"two octaves mirrored", 45, 1760},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromKeynum(tc.keynum).Frequency(); got != tc.expect {
				t.Errorf("Frequency(keynum %d) = %d, want %d", tc.keynum, got, tc.expect)
			}
		})
	}
}

func TestFrequencyMirrorsAroundReference(t *testing.T) {
	for d := 0; d <= 24; d++ {
		below := FromKeynum(refKeynum - d).Frequency()
		above := FromKeynum(refKeynum + d).Frequency()
		if below != above {
			t.Errorf("Frequency mismatch at distance %d: below %d, above %d", d, below, above)
		}
	}
}

func TestFrequencyMonotoneAboveReference(t *testing.T) {
	prev := FromKeynum(refKeynum).Frequency()
	for keynum := refKeynum + 1; keynum <= refKeynum+48; keynum++ {
		freq := FromKeynum(keynum).Frequency()
		if freq < prev {
			t.Errorf("Frequency(keynum %d) = %d, below Frequency(keynum %d) = %d", keynum, freq, keynum-1, prev)
		}
		prev = freq
	}
}

func TestAbsDiff(t *testing.T) {
	c4 := PitchClass{Note: 0, Octave: 4}
	a4 := PitchClass{Note: 9, Octave: 4}
	c5 := PitchClass{Note: 0, Octave: 5}

	if got := AbsDiff(c4, a4); got != 9 {
		t.Errorf("AbsDiff(C-4, A-4) = %d, want 9", got)
	}
	if AbsDiff(c4, a4) != AbsDiff(a4, c4) {
		t.Error("AbsDiff is not symmetric")
	}
	if got := AbsDiff(c4, c5); got != OctaveBase {
		t.Errorf("AbsDiff(C-4, C-5) = %d, want %d", got, OctaveBase)
	}
	if got := AbsDiff(a4, a4); got != 0 {
		t.Errorf("AbsDiff(A-4, A-4) = %d, want 0", got)
	}
}

func TestDiffWithDirection(t *testing.T) {
	tests := []struct {
		name      string
		a, b      PitchClass
		magnitude int
		dir       Direction
	}{
		{"equal", PitchClass{Note: 9, Octave: 4}, PitchClass{Note: 9, Octave: 4}, 0, Oblique},
		{"rising", PitchClass{Note: 0, Octave: 4}, PitchClass{Note: 9, Octave: 4}, 9, Up},
		{"falling", PitchClass{Note: 9, Octave: 4}, PitchClass{Note: 0, Octave: 4}, 9, Down},
		{"rising across octaves", PitchClass{Note: 11, Octave: 3}, PitchClass{Note: 0, Octave: 5}, 13, Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mag, dir := DiffWithDirection(tc.a, tc.b)
			if mag != tc.magnitude || dir != tc.dir {
				t.Errorf("DiffWithDirection = (%d, %s), want (%d, %s)", mag, dir, tc.magnitude, tc.dir)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir    Direction
		expect string
	}{
		{Oblique, "oblique"},
		{Up, "up"},
		{Down, "down"},
		{Direction(9), "direction(9)"},
	}

	for _, tc := range tests {
		if got := tc.dir.String(); got != tc.expect {
			t.Errorf("Direction(%d).String() = %q, want %q", uint8(tc.dir), got, tc.expect)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in     string
		expect Direction
	}{
		{"up", Up},
		{"UP", Up},
		{"Down", Down},
		{"oblique", Oblique},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil || got != tc.expect {
			t.Errorf("ParseDirection(%q) = (%s, %v), want %s", tc.in, got, err, tc.expect)
		}
	}

	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrBadDirection) {
		t.Errorf("ParseDirection(\"sideways\") error = %v, want ErrBadDirection", err)
	}
}
