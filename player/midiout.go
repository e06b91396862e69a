package player

import (
	"fmt"
	"math"
	"time"

	"gitlab.com/gomidi/midi/v2"
)

// MidiOut is an Output that plays tones on a MIDI out port instead of a
// buzzer. The pin argument doubles as the MIDI channel. Square waves don't
// exist here, so each tone becomes a note on / note off pair at the nearest
// key.
type MidiOut struct {
	Send  func(midi.Message) error
	Sleep func(time.Duration)
}

func NewMidiOut(send func(midi.Message) error) *MidiOut {
	return &MidiOut{Send: send, Sleep: time.Sleep}
}

// FrequencyToKey returns the MIDI key closest to the given frequency,
// clamped to the 0..127 key range.
func FrequencyToKey(frequency uint16) uint8 {
	key := math.Round(69 + 12*math.Log2(float64(frequency)/440))
	if key < 0 {
		return 0
	}
	if key > 127 {
		return 127
	}
	return uint8(key)
}

func (o *MidiOut) Tone(pin uint8, frequency uint16, duration time.Duration) {
	key := FrequencyToKey(frequency)
	if err := o.Send(midi.NoteOn(pin, key, 100)); err != nil {
		fmt.Printf("Could not send note on: %v\n", err)
		return
	}
	o.Sleep(duration)
	if err := o.Send(midi.NoteOff(pin, key)); err != nil {
		fmt.Printf("Could not send note off: %v\n", err)
	}
}
