package tempo

import (
	"math"
	"math/big"

	"github.com/jsphweid/melodeon/melody"
	"github.com/jsphweid/melodeon/note"
	"github.com/jsphweid/melodeon/score"
	"github.com/jsphweid/melodeon/util"
)

// Tempo relates musical time to wall time: some subdivision of a whole note
// occurs bpm times per minute. Immutable.
type Tempo struct {
	subdivision *big.Rat
	bpm         int
}

func New(subdivision *big.Rat, beatsPerMinute int) Tempo {
	return Tempo{subdivision: new(big.Rat).Set(subdivision), bpm: beatsPerMinute}
}

// QuarterEquals is the common case: quarter note = bpm.
func QuarterEquals(beatsPerMinute int) Tempo {
	return New(big.NewRat(1, 4), beatsPerMinute)
}

func (t Tempo) Subdivision() *big.Rat { return new(big.Rat).Set(t.subdivision) }

func (t Tempo) BeatsPerMinute() int { return t.bpm }

// ConvertTo re-expresses the tempo relative to another subdivision, rounding
// beats per minute to the nearest integer.
func (t Tempo) ConvertTo(subdivision *big.Rat) Tempo {
	r := new(big.Rat).Mul(big.NewRat(int64(t.bpm), 1), subdivision)
	r.Quo(r, t.subdivision)
	return New(subdivision, int(roundRat(r)))
}

// WholesToMillis converts whole-note lengths at this tempo to ms, rounded
// to the nearest millisecond.
func (t Tempo) WholesToMillis(wholes *big.Rat) int64 {
	r := new(big.Rat).Quo(wholes, new(big.Rat).Mul(big.NewRat(int64(t.bpm), 1), t.subdivision))
	r.Mul(r, big.NewRat(60_000, 1))
	return roundRat(r)
}

// MachineNote converts a score note at this tempo into a buzzer note. The
// sounding duration is the written duration scaled by the articulation,
// shifted by a 100ms base minus the articulated share of that base, and
// clamped to what the duration field can hold.
func (t Tempo) MachineNote(n score.Note) note.Note {
	frequency := uint16(math.Round(score.KeyToFrequency(n.Key)))
	actual := new(big.Rat).Mul(n.Articulation, n.Duration)
	durMs := 100 + t.WholesToMillis(actual) - roundRat(new(big.Rat).Mul(n.Articulation, big.NewRat(100, 1)))
	if durMs < 0 {
		durMs = 0
	}
	durMs = util.Min(durMs, math.MaxUint16)
	return note.New(frequency, uint32(t.WholesToMillis(n.Offset)), uint16(durMs))
}

// Machine converts a whole score into a melody at this tempo.
func (t Tempo) Machine(notes []score.Note) *melody.Melody {
	res := make([]note.Note, len(notes))
	for i, n := range notes {
		res[i] = t.MachineNote(n)
	}
	return melody.New(res)
}

func roundRat(r *big.Rat) int64 {
	f, _ := r.Float64()
	return int64(math.Round(f))
}
