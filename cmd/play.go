package cmd

import (
	"fmt"

	"github.com/jsphweid/melodeon/constants"
	"github.com/jsphweid/melodeon/melody"
	"github.com/jsphweid/melodeon/player"
	"github.com/jsphweid/melodeon/render"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	playMidi    bool
	playTune    string
	playBPM     int
	playChannel uint8
)

func init() {
	playCmd.Flags().BoolVar(&playMidi, "midi", false, "play through the first midi out port instead of the speaker")
	playCmd.Flags().Uint8Var(&playChannel, "channel", 0, "midi channel for --midi playback")
	playCmd.Flags().StringVarP(&playTune, "tune", "t", "", `inline tune instead of a midi file, e.g. "C4 E4 G4/2"`)
	playCmd.Flags().IntVar(&playBPM, "bpm", constants.DefaultBPM, "tempo for --tune input")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play [midi file]",
	Short: "Plays a melody",
	Long:  `Plays a melody`,
	Run: func(cmd *cobra.Command, args []string) {
		m := loadMelody(args, playTune, playBPM)
		if playMidi {
			playOverMidi(m)
			return
		}
		if err := render.PlaySpeaker(m); err != nil {
			panic("Could not play melody: " + err.Error())
		}
	},
}

func playOverMidi(m *melody.Melody) {
	defer gomidi.CloseDriver()

	out, err := gomidi.OutPort(0)
	if err != nil {
		fmt.Println("can't find a midi out port")
		return
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		panic("Could not open midi out port: " + err.Error())
	}

	p := player.New(player.NewMidiOut(send))
	p.PlayMelody(playChannel, m)
}
