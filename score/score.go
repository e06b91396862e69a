package score

import (
	"math"
	"math/big"
)

// Articulations: the sounding length of a note as a proportion of its
// written length.
var (
	Staccatissimo = big.NewRat(1, 7)
	Staccato      = big.NewRat(2, 7)
	MezzoStaccato = big.NewRat(3, 7)
	Portato       = big.NewRat(4, 7)
	NonLegato     = big.NewRat(5, 7)
	Tenuto        = big.NewRat(6, 7)
	Legato        = big.NewRat(1, 1)
)

// Note is a note in musical time: a MIDI key, with offset and duration
// measured in whole-note lengths. Exact fractions rather than floats so a
// triplet at bar 40 still lands on the right millisecond.
type Note struct {
	Key          uint8
	Offset       *big.Rat
	Duration     *big.Rat
	Articulation *big.Rat
}

// NewNote builds a score note with the default non-legato articulation.
func NewNote(key uint8, offset *big.Rat, duration *big.Rat) Note {
	return Note{
		Key:          key,
		Offset:       new(big.Rat).Set(offset),
		Duration:     new(big.Rat).Set(duration),
		Articulation: NonLegato,
	}
}

// End returns the offset at which the written note ends.
func (n Note) End() *big.Rat {
	return new(big.Rat).Add(n.Offset, n.Duration)
}

// KeyToFrequency converts a MIDI key to Hz in A440 equal temperament.
func KeyToFrequency(key uint8) float64 {
	return 440 * math.Pow(2, (float64(key)-69)/12)
}
