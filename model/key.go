package model

import "fmt"

type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	default:
		return Major, fmt.Errorf("unknown mode: %q", s)
	}
}

// UnknownKeyError means a (fifths, mode) pair has no entry in the key name
// table. There is no recovering from it: a tune in a key we cannot name
// cannot be rendered.
type UnknownKeyError struct {
	Fifths int
	Mode   Mode
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key: fifths=%d mode=%s", e.Fifths, e.Mode)
}

type keyID struct {
	fifths int
	mode   Mode
}

var keyNames = map[keyID]string{
	{0, Major}:  "C",
	{0, Minor}:  "Am",
	{1, Major}:  "G",
	{1, Minor}:  "Em",
	{2, Major}:  "D",
	{2, Minor}:  "Bm",
	{3, Major}:  "A",
	{3, Minor}:  "F♯m",
	{4, Major}:  "E",
	{4, Minor}:  "C♯m",
	{5, Major}:  "B",
	{5, Minor}:  "G♯m",
	{6, Major}:  "F♯",
	{6, Minor}:  "D♯m",
	{-1, Major}: "F",
	{-1, Minor}: "Dm",
	{-2, Major}: "Bb",
	{-2, Minor}: "Gm",
	{-3, Major}: "Eb",
	{-3, Minor}: "Cm",
	{-4, Major}: "Ab",
	{-4, Minor}: "Fm",
	{-5, Major}: "Db",
	{-5, Minor}: "Bbm",
	{-6, Major}: "Gb",
	{-6, Minor}: "Ebm",
}

// Key is the tune's key, fixed by the first measure's attributes.
type Key struct {
	Fifths int
	Mode   Mode

	name string
}

// NewKey resolves the (fifths, mode) pair against the key name table so
// that Name never fails later.
func NewKey(fifths int, mode Mode) (Key, error) {
	name, ok := keyNames[keyID{fifths, mode}]
	if !ok {
		return Key{}, &UnknownKeyError{Fifths: fifths, Mode: mode}
	}
	return Key{Fifths: fifths, Mode: mode, name: name}, nil
}

func (k Key) Name() string {
	return k.name
}
