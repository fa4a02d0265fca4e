package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/jwhearn/tunetext/config"
	"github.com/jwhearn/tunetext/logger"
	"github.com/jwhearn/tunetext/musicxml"
	"github.com/jwhearn/tunetext/notation"
	"github.com/jwhearn/tunetext/score"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var dumpTree bool

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&dumpTree, "dump", false, "Also write the parsed generic tree as JSON to the temp dir")
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Converts a score file",
	Long:  `Converts a MusicXML score file and prints the notation to stdout`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := Convert(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

// Convert parses, builds, and renders a single score file.
func Convert(path string) (string, error) {
	tree, err := musicxml.ParseFile(path)
	if err != nil {
		return "", err
	}
	if dumpTree {
		dumpGenericTree(tree)
	}
	tune, err := score.Build(tree)
	if err != nil {
		return "", err
	}
	return newRenderer().Render(tune), nil
}

func newRenderer() notation.Renderer {
	return notation.Renderer{ShowAccidentals: config.GetBool("render.accidentals")}
}

func dumpGenericTree(tree map[string]any) {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		logger.Warn("could not marshal tree dump", "err", err)
		return
	}
	path := filepath.Join(os.TempDir(), "tunetext-tree-"+uuid.New().String()+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Warn("could not write tree dump", "err", err)
		return
	}
	fmt.Fprintf(os.Stderr, "wrote tree dump to %v\n", path)
}
