package melody

import (
	"testing"

	"github.com/jsphweid/melodeon/note"
	"github.com/stretchr/testify/assert"
)

func TestNewSortsByOffset(t *testing.T) {
	m := New([]note.Note{
		note.New(440, 1000, 200),
		note.New(220, 0, 500),
		note.New(880, 500, 100),
	})

	assert := assert.New(t)
	assert.Equal(3, m.Len())
	assert.Equal(note.New(220, 0, 500), m.At(0))
	assert.Equal(note.New(880, 500, 100), m.At(1))
	assert.Equal(note.New(440, 1000, 200), m.At(2))
}

func TestOffsetsNonDecreasingAfterConstruction(t *testing.T) {
	m := New([]note.Note{
		note.New(100, 900, 10),
		note.New(100, 300, 10),
		note.New(100, 300, 20),
		note.New(100, 0, 10),
		note.New(100, 1200, 10),
	})

	for i := 0; i < m.Len()-1; i++ {
		assert.LessOrEqual(t, m.At(i).Offset(), m.At(i+1).Offset())
	}
}

func TestNewCopiesCallerSlice(t *testing.T) {
	notes := []note.Note{note.New(440, 100, 50)}
	m := New(notes)
	notes[0] = note.New(880, 0, 10)

	assert.Equal(t, note.New(440, 100, 50), m.At(0))
}

func TestSetOverwritesWithoutResorting(t *testing.T) {
	m := New([]note.Note{
		note.New(220, 0, 100),
		note.New(440, 500, 100),
	})
	m.Set(0, note.New(220, 9000, 100))

	// order is whatever the caller left it as
	assert := assert.New(t)
	assert.Equal(uint32(9000), m.At(0).Offset())
	assert.Equal(uint32(500), m.At(1).Offset())
}

func TestNotesIsLiveView(t *testing.T) {
	m := New([]note.Note{note.New(220, 0, 100)})
	m.Notes()[0] = note.New(330, 0, 100)

	assert.Equal(t, uint16(330), m.At(0).Frequency())
}

func TestOutOfRangePanics(t *testing.T) {
	m := New([]note.Note{note.New(220, 0, 100)})

	assert := assert.New(t)
	assert.Panics(func() { m.At(1) })
	assert.Panics(func() { m.Set(-1, note.New(220, 0, 100)) })
}

func TestDuration(t *testing.T) {
	m := New([]note.Note{
		note.New(440, 1000, 200),
		note.New(220, 0, 500),
	})

	assert := assert.New(t)
	assert.Equal(uint32(1200), m.Duration())
	assert.Equal(uint32(0), New(nil).Duration())
}

func TestEmptyMelody(t *testing.T) {
	m := New([]note.Note{})

	assert := assert.New(t)
	assert.Equal(0, m.Len())
	assert.Empty(m.Notes())
}
