package note

import (
	"fmt"
	"os"

	"github.com/jsphweid/melodeon/constants"
)

// Warn is where sub-audible frequency complaints go. Swappable so callers
// (and tests) can route diagnostics somewhere other than stderr.
var Warn = func(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// Note is a single tone event: a frequency in Hz, an offset in ms from the
// start of the melody, and a duration in ms. Durations are deliberately
// narrower than offsets: a single note has a practical ceiling on how long
// it can sound, a melody doesn't.
type Note struct {
	frequency uint16
	offset    uint32
	duration  uint16
}

// New builds a Note. A frequency below 31 Hz is almost certainly a mistake
// (the Arduino tone() floor), so it gets warned about, but the value is
// stored verbatim and construction never fails.
func New(frequency uint16, offset uint32, duration uint16) Note {
	if frequency < constants.MinFrequency {
		Warn(fmt.Sprintf("ERROR: frequency less than %v Hz provided: %v", constants.MinFrequency, frequency))
	}
	return Note{frequency: frequency, offset: offset, duration: duration}
}

// Frequency returns the pitch of the note in Hz.
func (n Note) Frequency() uint16 { return n.frequency }

// Offset returns the position of the note from the melody start in ms.
func (n Note) Offset() uint32 { return n.offset }

// Duration returns how long the note sounds in ms.
func (n Note) Duration() uint16 { return n.duration }

// End returns the offset at which the note stops sounding.
func (n Note) End() uint32 { return n.offset + uint32(n.duration) }

// Greater reports whether lhs starts later than rhs. This is the only
// ordering notes have; equal offsets are unordered.
func Greater(lhs Note, rhs Note) bool {
	return lhs.offset > rhs.offset
}
