package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/jwhearn/tunetext/logger"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-renders a score whenever it changes",
	Long:  `Re-renders a score file whenever it changes, printing the fresh notation`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch(args[0])
	},
}

func watch(path string) {
	render := func() {
		out, err := Convert(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println(out)
	}
	render()

	var lastMod time.Time
	if st, err := os.Stat(path); err == nil {
		lastMod = st.ModTime()
	}

	// Editors fire several writes in a row when saving; debounce so only
	// the settled version gets rendered.
	debounced := debounce.New(300 * time.Millisecond)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		st, err := os.Stat(path)
		if err != nil {
			logger.Warn("could not stat watched file", "path", path, "err", err)
			continue
		}
		if st.ModTime().After(lastMod) {
			lastMod = st.ModTime()
			debounced(render)
		}
	}
}
