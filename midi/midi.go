package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/melodeon/melody"
	"github.com/jsphweid/melodeon/note"
	"github.com/jsphweid/melodeon/score"
	"github.com/jsphweid/melodeon/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

type noteEvent struct {
	offsetMs  uint32
	isNoteOff bool
	key       uint8
}

// ExtractMelody flattens every track's note on/off pairs into buzzer notes
// at absolute millisecond offsets. The buzzer is monophonic but the melody
// container doesn't care; overlaps survive as-is and the player squeezes
// them out.
func ExtractMelody(s *smf.SMF) *melody.Melody {
	var events []noteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, noteEvent{
					// TimeAt is in microseconds; millis is plenty
					offsetMs: uint32(absTime / 1000),
					key:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{
					offsetMs:  uint32(absTime / 1000),
					isNoteOff: true,
					key:       key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.Slice(events, func(i, j int) bool {
		if events[i].offsetMs != events[j].offsetMs {
			return events[i].offsetMs < events[j].offsetMs
		}
		return events[i].isNoteOff
	})

	var notes []note.Note
	pressed := make(map[uint8]uint32)
	for _, evt := range events {
		if evt.isNoteOff {
			start, ok := pressed[evt.key]
			if !ok {
				continue
			}
			delete(pressed, evt.key)
			frequency := uint16(math.Round(score.KeyToFrequency(evt.key)))
			duration := util.Min(uint32(evt.offsetMs-start), math.MaxUint16)
			notes = append(notes, note.New(frequency, start, uint16(duration)))
		} else {
			pressed[evt.key] = evt.offsetMs
		}
	}
	return melody.New(notes)
}
