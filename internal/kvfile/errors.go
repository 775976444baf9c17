package kvfile

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to tell them apart.
var (
	ErrOpen          = errors.New("kvfile: cannot open file")
	ErrLabelNotFound = errors.New("kvfile: label not found")
	ErrNoData        = errors.New("kvfile: no data under label")
	ErrNotInteger    = errors.New("kvfile: value is not a single integer")
	ErrMalformed     = errors.New("kvfile: file content cannot be parsed")
)

// Error describes a lookup failure for one label of a file.
type Error struct {
	Label string
	Kind  error // one of the Err* kinds above
	Cause error // underlying I/O or parse error, may be nil
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrOpen:
		return "Failed to open the file"
	case ErrMalformed:
		return "The file content could not be read"
	case ErrLabelNotFound:
		return fmt.Sprintf("The item %s was not found", e.Label)
	case ErrNoData:
		return fmt.Sprintf("No data found under label %s", e.Label)
	case ErrNotInteger:
		return fmt.Sprintf("Expected one numerical value under label %s", e.Label)
	default:
		return fmt.Sprintf("kvfile: %s: %v", e.Label, e.Kind)
	}
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
