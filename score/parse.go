package score

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var noteOffsets = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseKey converts a note name like "C4", "F#3" or "Eb5" into a MIDI key.
// The octave defaults to 4 when omitted. Accidentals stack ("C##4" works,
// for whatever that's worth).
func ParseKey(s string) (uint8, error) {
	if s == "" {
		return 0, errors.New("empty note name")
	}
	first := s[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	key, ok := noteOffsets[first]
	if !ok {
		return 0, fmt.Errorf("unknown note name: %v", s)
	}
	i := 1
	for i < len(s) && (s[i] == '#' || s[i] == 'b') {
		if s[i] == '#' {
			key++
		} else {
			key--
		}
		i++
	}
	octave := 4
	if i < len(s) {
		o, err := strconv.Atoi(s[i:])
		if err != nil {
			return 0, fmt.Errorf("bad octave in note name: %v", s)
		}
		octave = o
	}
	key += (octave + 1) * 12
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("note out of midi range: %v", s)
	}
	return uint8(key), nil
}

// ParseTune parses a space-separated tune like "C4 E4 G4/8 C5/2" into score
// notes sounding back to back. Each token is a note name with an optional
// /N length denominator; a bare name is a quarter note.
func ParseTune(tune string) ([]Note, error) {
	var res []Note
	offset := new(big.Rat)
	for _, field := range strings.Fields(tune) {
		name := field
		length := big.NewRat(1, 4)
		if idx := strings.IndexByte(field, '/'); idx >= 0 {
			name = field[:idx]
			denom, err := strconv.Atoi(field[idx+1:])
			if err != nil || denom <= 0 {
				return nil, fmt.Errorf("bad note length: %v", field)
			}
			length = big.NewRat(1, int64(denom))
		}
		key, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		res = append(res, NewNote(key, offset, length))
		offset = new(big.Rat).Add(offset, length)
	}
	return res, nil
}
