package cmd

import (
	"fmt"
	"os"

	"github.com/jwhearn/tunetext/config"
	"github.com/jwhearn/tunetext/logger"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "tunetext",
	Short: "Converts MusicXML scores to single-line tune notation",
	Long: `tunetext reads a MusicXML (score-partwise) document and prints the
tune as compact one-line folk notation: pitch letters with octave
marks, sustain markers, barlines, and part/repeat/ending markers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}
		logger.Init(verbose)
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/tunetext/config.toml)")
}
