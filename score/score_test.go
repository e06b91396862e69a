package score

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertRatEqual(t *testing.T, want *big.Rat, got *big.Rat) {
	t.Helper()
	if want.Cmp(got) != 0 {
		t.Errorf("expected %v, got %v", want.RatString(), got.RatString())
	}
}

func TestKeyToFrequency(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(440.0, KeyToFrequency(69), 0.001)
	assert.InDelta(880.0, KeyToFrequency(81), 0.001)
	assert.InDelta(261.626, KeyToFrequency(60), 0.001)
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		name string
		key  uint8
	}{
		{"C4", 60},
		{"c4", 60},
		{"A4", 69},
		{"C#4", 61},
		{"Db4", 61},
		{"Eb3", 51},
		{"B3", 59},
		{"G", 67}, // octave defaults to 4
		{"C0", 12},
	}
	for _, c := range cases {
		key, err := ParseKey(c.name)
		assert.NoError(t, err, c.name)
		assert.Equal(t, c.key, key, c.name)
	}
}

func TestParseKeyErrors(t *testing.T) {
	for _, name := range []string{"", "H4", "C99", "Cx4"} {
		_, err := ParseKey(name)
		assert.Error(t, err, name)
	}
}

func TestParseTuneSequencesOffsets(t *testing.T) {
	notes, err := ParseTune("C4 E4 G4/8 C5/2")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(notes, 4)

	assert.Equal(uint8(60), notes[0].Key)
	assertRatEqual(t, big.NewRat(0, 1), notes[0].Offset)
	assertRatEqual(t, big.NewRat(1, 4), notes[0].Duration)

	assert.Equal(uint8(64), notes[1].Key)
	assertRatEqual(t, big.NewRat(1, 4), notes[1].Offset)

	assert.Equal(uint8(67), notes[2].Key)
	assertRatEqual(t, big.NewRat(1, 2), notes[2].Offset)
	assertRatEqual(t, big.NewRat(1, 8), notes[2].Duration)

	assert.Equal(uint8(72), notes[3].Key)
	assertRatEqual(t, big.NewRat(5, 8), notes[3].Offset)
	assertRatEqual(t, big.NewRat(1, 2), notes[3].Duration)
}

func TestParseTuneDefaultArticulation(t *testing.T) {
	notes, err := ParseTune("C4")

	assert.NoError(t, err)
	assertRatEqual(t, NonLegato, notes[0].Articulation)
}

func TestParseTuneErrors(t *testing.T) {
	for _, tune := range []string{"C4 X4", "C4/0", "C4/x"} {
		_, err := ParseTune(tune)
		assert.Error(t, err, tune)
	}
}

func TestNoteEnd(t *testing.T) {
	n := NewNote(60, big.NewRat(1, 4), big.NewRat(1, 8))
	assertRatEqual(t, big.NewRat(3, 8), n.End())
}
