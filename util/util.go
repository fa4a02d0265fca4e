package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwhearn/tunetext/constants"
	"golang.org/x/exp/constraints"
)

func RecreateOutputDir() {
	path, err := os.Getwd()
	if err != nil {
		panic("Could not RecreateOutputDir: " + err.Error())
	}
	dir := filepath.Join(path, constants.GetOutputDir())
	os.RemoveAll(dir)
	os.MkdirAll(dir, 0777)
}

// GatherAllScorePaths walks a directory for MusicXML files, up to maxNum
// of them (0 means no limit).
func GatherAllScorePaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".xml") || strings.HasSuffix(s, ".musicxml") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
