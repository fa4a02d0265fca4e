package notation

import (
	"testing"

	"github.com/jwhearn/tunetext/model"
	"github.com/stretchr/testify/assert"
)

func testKey(t *testing.T, fifths int, mode model.Mode) model.Key {
	key, err := model.NewKey(fifths, mode)
	assert.NoError(t, err)
	return key
}

func q(value string, duration float64) model.Note {
	return model.Note{Value: value, Duration: duration}
}

func TestFourQuarterNotesExample(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes:  []model.Note{q("C", 1), q("D", 1), q("E", 1), q("F", 1)},
			Part:   1,
		}},
	}

	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\nCDEF")
}

func TestOrdinaryBarlineBetweenMeasures(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{
			{Number: 1, Notes: []model.Note{q("C", 1), q("D", 1)}, Part: 1},
			{Number: 2, Notes: []model.Note{q("E", 1), q("F", 1)}, Part: 1},
		},
	}

	// The last measure of the tune gets no trailing barline.
	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\nCD | EF")
}

func TestMidPointSpaceInCompoundMeter(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 6, Lower: 8},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes: []model.Note{
				q("C", 1), q("D", 1), q("E", 1),
				q("F", 1), q("G", 1), q("A", 1),
			},
			Part: 1,
		}},
	}

	// Mid-point of 6/8 is 3: exactly one space, before the note starting
	// there, none for the notes entirely past it.
	assert.Equal(t, Render(tune), "Time Signature: 6/8\nKey: C\nCDE FGA")
}

func TestNoSpaceWhenMeasureStartsWithCrossingNote(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 6, Lower: 8},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes:  []model.Note{q("C", 6)},
			Part:   1,
		}},
	}

	assert.Equal(t, Render(tune), "Time Signature: 6/8\nKey: C\nC- ")
}

func TestStraddlingNoteTriggersSpaceAtItsStart(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 6, Lower: 8},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes:  []model.Note{q("C", 2), q("D", 2), q("E", 2)},
			Part:   1,
		}},
	}

	// D starts at 2 and ends at 4, crossing the mid-point 3.
	assert.Equal(t, Render(tune), "Time Signature: 6/8\nKey: C\nC- D- E- ")
}

func TestDottedNotesCountTowardPosition(t *testing.T) {
	dotted := func(value string) model.Note {
		return model.Note{Value: value, Duration: 0.5, Dotted: true}
	}
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 6, Lower: 8},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes:  []model.Note{dotted("C"), dotted("D"), dotted("E"), q("F", 0.5)},
			Part:   1,
		}},
	}

	// Each dotted eighth is worth a full beat; F starts right at the
	// mid-point only because the dots count.
	assert.Equal(t, Render(tune), "Time Signature: 6/8\nKey: C\nCDE F")
}

func TestSustainMarkerForDottedQuarter(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes: []model.Note{
				{Value: "C", Duration: 1, Dotted: true},
				q("D", 0.5),
			},
			Part: 1,
		}},
	}

	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\nC- D")
}

func TestOctaveMarks(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes: []model.Note{
				{Value: "C", Duration: 1, High: true},
				{Value: "D", Duration: 1},
				{Value: "B", Duration: 1, Low: true},
			},
			Part: 1,
		}},
	}

	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\nC'DB,")
}

func TestEndingPrefix(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes:  []model.Note{q("C", 1)},
			Ending: 2,
			Part:   1,
		}},
	}

	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\n2) C")
}

func TestRepeatMarker(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{
			{Number: 1, Notes: []model.Note{q("C", 1)}, Repeat: true, Part: 1},
			{Number: 2, Notes: []model.Note{q("D", 1)}, Part: 1},
		},
	}

	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\nC :| D")
}

func TestPartEndingWinsAndStartsNewLine(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{
			{Number: 1, Notes: []model.Note{q("C", 1)}, Ending: 1, PartEnding: true, Part: 1},
			{Number: 2, Notes: []model.Note{q("D", 1)}, Part: 2},
		},
	}

	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\n1) C ||\nD")
}

func TestMeasureWithoutNotesRendersDecorationsOnly(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{
			{Number: 1, Ending: 1, Part: 1},
			{Number: 2, Notes: []model.Note{q("D", 1)}, Part: 1},
		},
	}

	assert.Equal(t, Render(tune), "Time Signature: 4/4\nKey: C\n1) | D")
}

func TestRenderingIsDeterministic(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 6, Lower: 8},
		Key:  testKey(t, -3, model.Minor),
		Measures: []model.Measure{
			{Number: 1, Notes: []model.Note{q("C", 2), q("E", 1)}, Repeat: true, Part: 1},
			{Number: 2, Notes: []model.Note{q("G", 3)}, Part: 1},
		},
	}

	assert.Equal(t, Render(tune), Render(tune))
}

func TestHeaderKeyNames(t *testing.T) {
	assert := assert.New(t)

	flatHeavy := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, -5, model.Major),
	}
	assert.Equal(Render(flatHeavy), "Time Signature: 4/4\nKey: Db\n")

	sharpHeavy := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 6, model.Minor),
	}
	assert.Equal(Render(sharpHeavy), "Time Signature: 4/4\nKey: D♯m\n")
}

func TestAccidentalsHiddenByDefault(t *testing.T) {
	tune := model.Tune{
		Time: model.TimeSignature{Upper: 4, Lower: 4},
		Key:  testKey(t, 0, model.Major),
		Measures: []model.Measure{{
			Number: 1,
			Notes: []model.Note{
				{Value: "B", Duration: 1, Flat: true},
				{Value: "F", Duration: 1, Sharp: true, High: true},
			},
			Part: 1,
		}},
	}

	assert := assert.New(t)
	assert.Equal(Render(tune), "Time Signature: 4/4\nKey: C\nBF'")
	assert.Equal(
		Renderer{ShowAccidentals: true}.Render(tune),
		"Time Signature: 4/4\nKey: C\nB♭F♯'",
	)
}
