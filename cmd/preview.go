package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/melodeon/constants"
	"github.com/jsphweid/melodeon/render"
	"github.com/spf13/cobra"
)

var (
	previewOut  string
	previewTune string
	previewBPM  int
)

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "output wav path (default: uuid-named file in the render dir)")
	previewCmd.Flags().StringVarP(&previewTune, "tune", "t", "", `inline tune instead of a midi file, e.g. "C4 E4 G4/2"`)
	previewCmd.Flags().IntVar(&previewBPM, "bpm", constants.DefaultBPM, "tempo for --tune input")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [midi file]",
	Short: "Renders a melody to a wav file",
	Long:  `Renders a melody to a wav file`,
	Run: func(cmd *cobra.Command, args []string) {
		m := loadMelody(args, previewTune, previewBPM)

		out := previewOut
		if out == "" {
			os.MkdirAll(constants.GetRenderDir(), 0777)
			out = filepath.Join(constants.GetRenderDir(), uuid.New().String()+".wav")
		}

		f, err := os.Create(out)
		if err != nil {
			panic("Could not create output file: " + err.Error())
		}
		defer f.Close()

		if err := render.WriteWAV(f, m); err != nil {
			panic("Could not render wav: " + err.Error())
		}
		fmt.Printf("Wrote %v notes to %v\n", m.Len(), out)
	},
}
