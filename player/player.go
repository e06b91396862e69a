package player

import (
	"time"

	"github.com/jsphweid/melodeon/melody"
	"github.com/jsphweid/melodeon/util"
)

// Output is the hardware-facing tone primitive: sound a square wave of the
// given frequency on the given pin, block for duration, then go silent.
type Output interface {
	Tone(pin uint8, frequency uint16, duration time.Duration)
}

// Player drives an Output through a melody. Sleep is swappable for tests;
// it defaults to time.Sleep.
type Player struct {
	Out   Output
	Sleep func(time.Duration)
}

func New(out Output) *Player {
	return &Player{Out: out, Sleep: time.Sleep}
}

// PlayMelody sounds every note of m on the given pin, in stored order,
// sleeping through the gap before each note. The gap is the note's offset
// minus the time already consumed by earlier sleeps and tones, clamped at
// zero when offsets overlap a previous note's tail. An empty melody returns
// immediately without touching Out or Sleep.
func (p *Player) PlayMelody(pin uint8, m *melody.Melody) {
	if m.Len() == 0 {
		return
	}
	var elapsed int64
	for _, n := range m.Notes() {
		gap := util.Max(int64(n.Offset())-elapsed, 0)
		p.Sleep(time.Duration(gap) * time.Millisecond)
		p.Out.Tone(pin, n.Frequency(), time.Duration(n.Duration())*time.Millisecond)
		elapsed = int64(n.Offset()) + int64(n.Duration())
	}
}
