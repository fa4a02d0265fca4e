// Package score builds the tune model from a generic parsed MusicXML tree.
//
// Only the first part of a multi-part score is modeled: the textual
// notation is single-voice, so additional parts are deliberately ignored.
package score

import (
	"fmt"
	"strconv"

	"github.com/jwhearn/tunetext/constants"
	"github.com/jwhearn/tunetext/model"
)

// MalformedScoreError means a required field was absent or had the wrong
// shape. A malformed measure invalidates the whole conversion.
type MalformedScoreError struct {
	Msg string
}

func (e *MalformedScoreError) Error() string {
	return "malformed score: " + e.Msg
}

func malformed(format string, args ...any) *MalformedScoreError {
	return &MalformedScoreError{Msg: fmt.Sprintf(format, args...)}
}

// Build walks the generic tree and assembles a Tune. The key and time
// signature come from the first measure only; their absence there is an
// error, not a default.
func Build(tree map[string]any) (model.Tune, error) {
	var blank model.Tune

	root, ok := childMap(tree, "score-partwise")
	if !ok {
		return blank, malformed("missing score-partwise root")
	}
	measureData, err := firstPartMeasures(root)
	if err != nil {
		return blank, err
	}
	first, ok := measureData[0].(map[string]any)
	if !ok {
		return blank, malformed("first measure is not a structured element")
	}

	ts, err := parseTimeSignature(first)
	if err != nil {
		return blank, err
	}
	key, err := parseKey(first)
	if err != nil {
		return blank, err
	}

	var measures []model.Measure
	part := 1
	for i, raw := range measureData {
		data, ok := raw.(map[string]any)
		if !ok {
			return blank, malformed("measure %d is not a structured element", i+1)
		}
		measure, err := parseMeasure(data)
		if err != nil {
			return blank, err
		}
		measure.Part = part
		measures = append(measures, measure)
		if measure.PartEnding {
			part++
		}
	}

	return model.Tune{Time: ts, Key: key, Measures: measures}, nil
}

// firstPartMeasures locates the measure list of the first part. A score
// with a single part encodes it as a map rather than a list.
func firstPartMeasures(root map[string]any) ([]any, error) {
	var part map[string]any
	switch v := root["part"].(type) {
	case map[string]any:
		part = v
	case []any:
		if len(v) == 0 {
			return nil, malformed("empty part list")
		}
		p, ok := v[0].(map[string]any)
		if !ok {
			return nil, malformed("first part is not a structured element")
		}
		part = p
	default:
		return nil, malformed("missing part list")
	}

	switch v := part["measure"].(type) {
	case map[string]any:
		return []any{v}, nil
	case []any:
		if len(v) == 0 {
			return nil, malformed("part has no measures")
		}
		return v, nil
	default:
		return nil, malformed("part has no measures")
	}
}

func parseTimeSignature(measure map[string]any) (model.TimeSignature, error) {
	var blank model.TimeSignature
	attrs, ok := childMap(measure, "attributes")
	if !ok {
		return blank, malformed("first measure missing attributes")
	}
	timeData, ok := childMap(attrs, "time")
	if !ok {
		return blank, malformed("first measure missing time signature")
	}
	upper, err := intField(timeData, "beats")
	if err != nil {
		return blank, err
	}
	lower, err := intField(timeData, "beat-type")
	if err != nil {
		return blank, err
	}
	return model.TimeSignature{Upper: upper, Lower: lower}, nil
}

func parseKey(measure map[string]any) (model.Key, error) {
	var blank model.Key
	attrs, ok := childMap(measure, "attributes")
	if !ok {
		return blank, malformed("first measure missing attributes")
	}
	keyData, ok := childMap(attrs, "key")
	if !ok {
		return blank, malformed("first measure missing key")
	}
	fifths, err := intField(keyData, "fifths")
	if err != nil {
		return blank, err
	}
	modeStr, ok := text(keyData, "mode")
	if !ok {
		return blank, malformed("key missing mode")
	}
	mode, err := model.ParseMode(modeStr)
	if err != nil {
		return blank, malformed("key has %v", err)
	}

	// An unknown (fifths, mode) pair surfaces as UnknownKeyError, untouched.
	return model.NewKey(fifths, mode)
}

func parseMeasure(data map[string]any) (model.Measure, error) {
	var blank model.Measure

	number, err := intField(data, "@number")
	if err != nil {
		return blank, err
	}

	measure := model.Measure{Number: number}
	if err := parseBarlines(data, &measure); err != nil {
		return blank, err
	}

	// A note entry that is not a structured record (interleaved directions,
	// stray text) is skipped, not an error.
	for _, raw := range asList(data["note"]) {
		noteData, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		note, err := parseNote(noteData)
		if err != nil {
			return blank, err
		}
		measure.Notes = append(measure.Notes, note)
	}

	return measure, nil
}

func parseBarlines(data map[string]any, measure *model.Measure) error {
	for _, raw := range asList(data["barline"]) {
		barline, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		location, _ := text(barline, "@location")
		if location == "right" {
			style, ok := text(barline, "bar-style")
			if !ok {
				return malformed("measure %d: right barline missing bar-style", measure.Number)
			}
			if style == "light-light" {
				measure.PartEnding = true
			} else {
				repeat, ok := childMap(barline, "repeat")
				if !ok {
					return malformed("measure %d: right barline missing repeat", measure.Number)
				}
				direction, ok := text(repeat, "@direction")
				if !ok {
					return malformed("measure %d: repeat missing direction", measure.Number)
				}
				if direction == "backward" {
					measure.Repeat = true
				}
			}
		}
		if ending, ok := childMap(barline, "ending"); ok {
			if typ, _ := text(ending, "@type"); typ == "start" {
				number, err := intField(ending, "@number")
				if err != nil {
					return err
				}
				measure.Ending = number
			}
		}
	}
	return nil
}

func parseNote(data map[string]any) (model.Note, error) {
	var blank model.Note

	pitch, ok := childMap(data, "pitch")
	if !ok {
		return blank, malformed("note missing pitch")
	}
	step, ok := text(pitch, "step")
	if !ok {
		return blank, malformed("pitch missing step")
	}
	if len(step) != 1 || step[0] < 'A' || step[0] > 'G' {
		return blank, malformed("pitch has invalid step %q", step)
	}
	octave, err := intField(pitch, "octave")
	if err != nil {
		return blank, err
	}
	ticks, err := intField(data, "duration")
	if err != nil {
		return blank, err
	}
	_, dotted := data["dot"]

	note := model.Note{
		Value:    step,
		Duration: float64(ticks) / constants.TicksPerQuarter,
		Dotted:   dotted,
	}

	// Octaves are numbered from C upward, so the register break for C sits
	// one octave above the break for every other letter.
	if step == "C" {
		note.High = octave == 6
		note.Low = octave == 4
	} else {
		note.High = octave == 5
		note.Low = octave == 3
	}

	if alterStr, ok := text(pitch, "alter"); ok {
		alter, err := strconv.Atoi(alterStr)
		if err != nil {
			return blank, malformed("pitch has invalid alter %q", alterStr)
		}
		switch alter {
		case -1:
			note.Flat = true
		case 1:
			note.Sharp = true
		}
	}

	return note, nil
}

// asList normalizes the tree's single-vs-repeated element encoding: absent
// → nil, one occurrence → one-element list.
func asList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

func childMap(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}

// text reads a string-valued field, looking through the "#text" wrapper an
// element with attributes gets.
func text(m map[string]any, key string) (string, bool) {
	switch v := m[key].(type) {
	case string:
		return v, true
	case map[string]any:
		s, ok := v["#text"].(string)
		return s, ok
	default:
		return "", false
	}
}

func intField(m map[string]any, key string) (int, error) {
	s, ok := text(m, key)
	if !ok {
		return 0, malformed("missing %s", key)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed("%s is not a number: %q", key, s)
	}
	return n, nil
}
