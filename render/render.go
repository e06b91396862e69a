package render

import (
	"io"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/jsphweid/melodeon/constants"
	"github.com/jsphweid/melodeon/melody"
	"github.com/jsphweid/melodeon/util"
)

// Format is what every render uses: CD-rate stereo, 16-bit.
var Format = beep.Format{
	SampleRate:  beep.SampleRate(constants.SampleRate),
	NumChannels: 2,
	Precision:   2,
}

// Streamer synthesizes a melody as the square waves a buzzer would produce.
// It satisfies beep.Streamer and runs for exactly the melody's duration.
type Streamer struct {
	m      *melody.Melody
	pos    int
	length int
}

func NewStreamer(m *melody.Melody) *Streamer {
	return &Streamer{
		m:      m,
		length: Format.SampleRate.N(time.Duration(m.Duration()) * time.Millisecond),
	}
}

func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.length {
		return 0, false
	}
	n := util.Min(len(samples), s.length-s.pos)
	for i := 0; i < n; i++ {
		v := s.sampleAt(s.pos + i)
		samples[i][0] = v
		samples[i][1] = v
	}
	s.pos += n
	return n, true
}

func (s *Streamer) Err() error { return nil }

// sampleAt mixes every note sounding at the given sample position. Melodies
// are short and monophonic in practice, so the per-sample scan over notes
// is fine.
func (s *Streamer) sampleAt(pos int) float64 {
	t := float64(pos) / float64(Format.SampleRate)
	var v float64
	for _, n := range s.m.Notes() {
		start := float64(n.Offset()) / 1000
		if t < start {
			break
		}
		if t >= float64(n.End())/1000 {
			continue
		}
		if phase := math.Mod((t-start)*float64(n.Frequency()), 1); phase < 0.5 {
			v += constants.RenderGain
		} else {
			v -= constants.RenderGain
		}
	}
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return v
}

// WriteWAV renders the melody into w as a WAV file.
func WriteWAV(w io.WriteSeeker, m *melody.Melody) error {
	return wav.Encode(w, NewStreamer(m), Format)
}

// PlaySpeaker plays the melody on the default audio device and blocks until
// it finishes.
func PlaySpeaker(m *melody.Melody) error {
	if err := speaker.Init(Format.SampleRate, Format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(NewStreamer(m), beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}
