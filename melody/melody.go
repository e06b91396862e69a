package melody

import (
	"sort"

	"github.com/jsphweid/melodeon/note"
)

// Melody is a length-immutable sequence of notes kept in ascending offset
// order so playback can walk it front to back without rescanning.
type Melody struct {
	notes []note.Note
}

// New copies the given notes and sorts them by offset. The melody owns the
// copy; the caller's slice is never aliased. The sort is not stable across
// equal offsets.
func New(notes []note.Note) *Melody {
	m := Melody{notes: make([]note.Note, len(notes))}
	copy(m.notes, notes)
	sort.Slice(m.notes, func(i, j int) bool {
		return note.Greater(m.notes[j], m.notes[i])
	})
	return &m
}

// Len returns the number of notes, fixed at construction.
func (m *Melody) Len() int { return len(m.notes) }

// At returns the note at index i. Out of range panics.
func (m *Melody) At(i int) note.Note { return m.notes[i] }

// Set overwrites the note at index i. No re-sort happens: writing an offset
// that breaks ascending order is on the caller. Out of range panics.
func (m *Melody) Set(i int, n note.Note) { m.notes[i] = n }

// Notes returns the backing slice in current order, suitable for ranging.
// Mutating elements mutates the melody, with the same no-re-sort caveat
// as Set.
func (m *Melody) Notes() []note.Note { return m.notes }

// Duration returns the total playback length in ms: the end of the last
// note by offset. Zero for an empty melody.
func (m *Melody) Duration() uint32 {
	if len(m.notes) == 0 {
		return 0
	}
	return m.notes[len(m.notes)-1].End()
}
