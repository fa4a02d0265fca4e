package model

import "fmt"

// TimeSignature is fixed for the whole tune, read from the first measure.
type TimeSignature struct {
	Upper int
	Lower int
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Upper, ts.Lower)
}

// Note is a single pitched note event. High/Low place it relative to the
// reference octave; the break points differ for C because octaves are
// numbered from C upward. Duration is in quarter-note units.
type Note struct {
	Value    string
	High     bool
	Low      bool
	Duration float64
	Dotted   bool
	Flat     bool
	Sharp    bool
}

// Length is the effective duration: a dot extends the note by half a beat.
func (n Note) Length() float64 {
	if n.Dotted {
		return n.Duration + 0.5
	}
	return n.Duration
}

type Measure struct {
	Number int
	Notes  []Note

	// Ending is the numbered repeat bracket this measure starts, 0 if none.
	Ending int

	// Part is the 1-based structural part the measure belongs to.
	// PartEnding and Repeat are mutually exclusive closing decorations.
	Part       int
	PartEnding bool
	Repeat     bool
}

// Tune is the root aggregate: one key, one time signature, measures in
// document order.
type Tune struct {
	Time     TimeSignature
	Key      Key
	Measures []Measure
}
