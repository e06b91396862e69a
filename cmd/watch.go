package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/melodeon/gen"
	"github.com/jsphweid/melodeon/midi"
	"github.com/spf13/cobra"
)

var watchName string

func init() {
	watchCmd.Flags().StringVarP(&watchName, "name", "n", "MY_MELODY", "name of the emitted variable")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <midi file> <output file>",
	Short: "Regenerates a melody literal whenever the midi file changes",
	Long:  `Regenerates a melody literal whenever the midi file changes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need a midi file and an output file...")
		}
		watch(args[0], args[1])
	},
}

func regenerate(path string, out string) {
	s, err := midi.ReadFile(path)
	if err != nil {
		fmt.Printf("Skipping regeneration because: %v\n", err)
		return
	}
	m := midi.ExtractMelody(s)
	src, err := gen.CppLiteral(m, watchName)
	if err != nil {
		panic("Could not emit source: " + err.Error())
	}
	if err := os.WriteFile(out, []byte(src+"\n"), 0777); err != nil {
		panic("Could not write output file: " + err.Error())
	}
	fmt.Printf("Regenerated %v (%v notes)\n", out, m.Len())
}

// watch polls the file's mtime; editors fire several writes in a row when
// saving, so regeneration goes through a debouncer.
func watch(path string, out string) {
	regenerate(path, out)

	var lastMod time.Time
	if stat, err := os.Stat(path); err == nil {
		lastMod = stat.ModTime()
	}

	debounced := debounce.New(500 * time.Millisecond)
	for range time.Tick(200 * time.Millisecond) {
		stat, err := os.Stat(path)
		if err != nil {
			continue
		}
		if stat.ModTime().After(lastMod) {
			lastMod = stat.ModTime()
			debounced(func() { regenerate(path, out) })
		}
	}
}
