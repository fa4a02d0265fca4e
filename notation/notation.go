// Package notation renders a tune as single-line folk notation: pitch
// letters with octave marks, sustain markers, bar separators, and
// part/repeat/ending decorations, under a two-line header.
package notation

import (
	"fmt"
	"strings"

	"github.com/jwhearn/tunetext/constants"
	"github.com/jwhearn/tunetext/model"
)

// Renderer holds rendering options. The zero value matches the historical
// output, which computes accidentals but does not print them.
type Renderer struct {
	ShowAccidentals bool
}

// Render converts with default options.
func Render(t model.Tune) string {
	return Renderer{}.Render(t)
}

// Render produces the notation text. The input is never mutated; identical
// tunes yield byte-identical output.
func (r Renderer) Render(t model.Tune) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Time Signature: %s\n", t.Time)
	fmt.Fprintf(&sb, "Key: %s\n", t.Key.Name())

	// Simple meters break at the full beat count (so never mid-measure);
	// compound ones at half of it.
	midPoint := float64(t.Time.Upper)
	if t.Time.Lower > 4 {
		midPoint = float64(t.Time.Upper / 2)
	}

	for _, measure := range t.Measures {
		if measure.Ending != 0 {
			fmt.Fprintf(&sb, "%d) ", measure.Ending)
		}
		count := 0.0
		for _, note := range measure.Notes {
			length := note.Length()
			// One micro-space per measure, at the start of the note whose
			// span first crosses the mid-point.
			if count > 0 && count <= midPoint && count+length > midPoint {
				sb.WriteString(" ")
			}
			count += length
			sb.WriteString(note.Value)
			if r.ShowAccidentals {
				if note.Flat {
					sb.WriteString(constants.Flat)
				} else if note.Sharp {
					sb.WriteString(constants.Sharp)
				}
			}
			if note.High {
				sb.WriteString("'")
			}
			if note.Low {
				sb.WriteString(",")
			}
			if length > 1 {
				sb.WriteString("- ")
			}
		}
		switch {
		case measure.PartEnding:
			sb.WriteString(" ||\n")
		case measure.Repeat:
			sb.WriteString(" :| ")
		case measure.Number < len(t.Measures):
			sb.WriteString(" | ")
		}
	}

	// Adjacent decorations can leave a double space behind.
	return strings.ReplaceAll(sb.String(), "  ", " ")
}
