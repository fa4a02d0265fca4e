package file

import (
	"path/filepath"
	"strings"
)

// CreateOutPathMap maps each score path to the .txt path its notation is
// written to under outDir.
func CreateOutPathMap(paths []string, outDir string) map[string]string {
	res := make(map[string]string)
	for _, p := range paths {
		base := filepath.Base(p)
		name := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
		res[p] = filepath.Join(outDir, name)
	}
	return res
}
