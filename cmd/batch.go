package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/jwhearn/tunetext/constants"
	"github.com/jwhearn/tunetext/file"
	"github.com/jwhearn/tunetext/util"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir> [max]",
	Short: "Converts a directory of scores",
	Long:  `Converts every MusicXML file under a directory, writing one .txt per score to the output dir`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: max must be a number: %v\n", args[1])
				os.Exit(1)
			}
			maxNum = arg2
		}
		runBatch(args[0], maxNum)
	},
}

func runBatch(dir string, maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllScorePaths(dir, maxNum)
	outPaths := file.CreateOutPathMap(paths, constants.GetOutputDir())

	// One score per goroutine; a file that fails to convert is skipped,
	// never the whole batch.
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, path := range util.GetKeys(outPaths) {
		path := path
		g.Go(func() error {
			out, err := Convert(path)
			if err != nil {
				fmt.Printf("Skipping %v because: %v\n", path, err)
				return nil
			}
			if err := os.WriteFile(outPaths[path], []byte(out), 0644); err != nil {
				fmt.Printf("Skipping %v because: %v\n", path, err)
			}
			return nil
		})
	}
	g.Wait()
	fmt.Printf("Converted %v scores into %v\n", len(paths), constants.GetOutputDir())
}
