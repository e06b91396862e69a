package tempo

import (
	"math/big"
	"testing"

	"github.com/jsphweid/melodeon/score"
	"github.com/stretchr/testify/assert"
)

func TestWholesToMillis(t *testing.T) {
	quarter120 := QuarterEquals(120)

	assert := assert.New(t)
	assert.Equal(int64(500), quarter120.WholesToMillis(big.NewRat(1, 4)))
	assert.Equal(int64(2000), quarter120.WholesToMillis(big.NewRat(1, 1)))
	assert.Equal(int64(250), quarter120.WholesToMillis(big.NewRat(1, 8)))
	assert.Equal(int64(0), quarter120.WholesToMillis(big.NewRat(0, 1)))

	// 1/3 of a whole at quarter=120 is 666.67ms, rounded
	assert.Equal(int64(667), quarter120.WholesToMillis(big.NewRat(1, 3)))
}

func TestConvertTo(t *testing.T) {
	// quarter = 120 re-expressed against the eighth: rate scales by the
	// subdivision ratio, so eighth = 60
	eighth := QuarterEquals(120).ConvertTo(big.NewRat(1, 8))

	assert := assert.New(t)
	assert.Equal(60, eighth.BeatsPerMinute())
	assert.Zero(eighth.Subdivision().Cmp(big.NewRat(1, 8)))
}

func TestConvertToRoundsRate(t *testing.T) {
	// 100 * (1/3) / (1/4) = 133.33, rounded
	third := QuarterEquals(100).ConvertTo(big.NewRat(1, 3))

	assert.Equal(t, 133, third.BeatsPerMinute())
}

func TestMachineNoteLegatoQuarter(t *testing.T) {
	n := score.NewNote(69, big.NewRat(1, 4), big.NewRat(1, 4))
	n.Articulation = score.Legato

	mn := QuarterEquals(120).MachineNote(n)

	assert := assert.New(t)
	assert.Equal(uint16(440), mn.Frequency())
	assert.Equal(uint32(500), mn.Offset())
	assert.Equal(uint16(500), mn.Duration())
}

func TestMachineNoteNonLegatoQuarter(t *testing.T) {
	n := score.NewNote(60, big.NewRat(0, 1), big.NewRat(1, 4))

	mn := QuarterEquals(120).MachineNote(n)

	assert := assert.New(t)
	assert.Equal(uint16(262), mn.Frequency())
	assert.Equal(uint32(0), mn.Offset())
	// 100 + ms(5/7 * 1/4 wholes) - round(5/7 * 100) = 100 + 357 - 71
	assert.Equal(uint16(386), mn.Duration())
}

func TestMachineNoteClampsLongDurations(t *testing.T) {
	// a whole note at quarter = 1 would sound for 4 minutes, far past
	// what the duration field can hold
	n := score.NewNote(60, big.NewRat(0, 1), big.NewRat(1, 1))
	n.Articulation = score.Legato

	mn := QuarterEquals(1).MachineNote(n)

	assert.Equal(t, uint16(65535), mn.Duration())
}

func TestMachineSortsResult(t *testing.T) {
	notes := []score.Note{
		score.NewNote(72, big.NewRat(1, 2), big.NewRat(1, 4)),
		score.NewNote(60, big.NewRat(0, 1), big.NewRat(1, 4)),
	}

	m := QuarterEquals(120).Machine(notes)

	assert := assert.New(t)
	assert.Equal(2, m.Len())
	assert.Equal(uint32(0), m.At(0).Offset())
	assert.Equal(uint32(1000), m.At(1).Offset())
}
