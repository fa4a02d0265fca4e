package constants

import "os"

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}
	return "./scores"
}

// The feeds this tool consumes all encode note durations with 96 ticks per
// quarter note.
const TicksPerQuarter = 96

const (
	Flat  = "♭"
	Sharp = "♯"
)
