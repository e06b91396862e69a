package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "melodeon",
	Short: "Buzzer melody toolkit",
	Long:  `Turns midi files and inline tunes into Arduino buzzer melodies, previews them, and plays them.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
