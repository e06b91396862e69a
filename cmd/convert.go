package cmd

import (
	"fmt"

	"github.com/jsphweid/melodeon/constants"
	"github.com/jsphweid/melodeon/gen"
	"github.com/jsphweid/melodeon/melody"
	"github.com/jsphweid/melodeon/midi"
	"github.com/jsphweid/melodeon/score"
	"github.com/jsphweid/melodeon/tempo"
	"github.com/spf13/cobra"
)

var (
	convertName string
	convertLang string
	convertTune string
	convertBPM  int
)

func init() {
	convertCmd.Flags().StringVarP(&convertName, "name", "n", "MY_MELODY", "name of the emitted variable")
	convertCmd.Flags().StringVarP(&convertLang, "lang", "l", "cpp", "output language (cpp or go)")
	convertCmd.Flags().StringVarP(&convertTune, "tune", "t", "", `inline tune instead of a midi file, e.g. "C4 E4 G4/2"`)
	convertCmd.Flags().IntVar(&convertBPM, "bpm", constants.DefaultBPM, "tempo for --tune input")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [midi file]",
	Short: "Emits a melody as source code",
	Long:  `Emits a melody as source code`,
	Run: func(cmd *cobra.Command, args []string) {
		m := loadMelody(args, convertTune, convertBPM)
		fmt.Println(emitSource(m, convertName, convertLang))
	},
}

// loadMelody builds a melody from either a midi file argument or an inline
// tune. Shared by every command that takes melody input.
func loadMelody(args []string, tune string, bpm int) *melody.Melody {
	if tune != "" {
		notes, err := score.ParseTune(tune)
		if err != nil {
			panic("Could not parse tune: " + err.Error())
		}
		return tempo.QuarterEquals(bpm).Machine(notes)
	}
	if len(args) != 1 {
		panic("Need a midi file or --tune...")
	}
	s, err := midi.ReadFile(args[0])
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	return midi.ExtractMelody(s)
}

func emitSource(m *melody.Melody, name string, lang string) string {
	var src string
	var err error
	switch lang {
	case "cpp":
		src, err = gen.CppLiteral(m, name)
	case "go":
		src, err = gen.GoLiteral(m, name)
	default:
		panic("Unknown lang: " + lang)
	}
	if err != nil {
		panic("Could not emit source: " + err.Error())
	}
	return src
}
