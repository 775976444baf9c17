package level

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/tui-bomber/internal/kvfile"
)

// Labels of a save slot file.
const (
	LabelScore = "Score"
	LabelMap   = "Map"
)

// WriteSlot stores the map and its score in the save slot at path. Other
// labels already present in the file are kept.
func WriteSlot(path string, m *Map) error {
	err := kvfile.Update(path, func(f *kvfile.File) {
		f.SetInt(LabelScore, m.Score)
		f.Set(LabelMap, EncodeRows(m)...)
	})
	if err != nil {
		return fmt.Errorf("level: cannot write save slot: %w", err)
	}
	return nil
}

// ReadSlot loads a width x height map from the save slot at path.
//
// An unreadable file yields an error matching ErrIO. Content that does not
// parse, missing labels, a bad score and every grid problem yield errors
// matching ErrFormat.
func ReadSlot(path string, width, height int) (*Map, error) {
	f, err := kvfile.Read(path)
	if errors.Is(err, kvfile.ErrMalformed) {
		return nil, unparsableError(path, err)
	}
	if err != nil {
		return nil, ioError(path, err)
	}

	score, err := f.Int(LabelScore)
	if err != nil {
		return nil, missingFieldError(err)
	}
	if score < 0 {
		return nil, negativeScoreError(score)
	}

	rows, err := f.Lines(LabelMap)
	if err != nil {
		return nil, missingFieldError(err)
	}
	return Decode(score, rows, width, height)
}

// ReadGrid loads a bare width x height grid, as printed by Encode, from the
// file at path. The map gets a zero score.
func ReadGrid(path string, width, height int) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	return DecodeText(0, string(data), width, height)
}
