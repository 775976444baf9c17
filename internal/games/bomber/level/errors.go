package level

import (
	"errors"
	"fmt"
)

// Error kinds returned by Decode and ReadSlot. Every format kind also
// matches ErrFormat; ErrIO never does.
var (
	ErrFormat        = errors.New("level: malformed map data")
	ErrDimensions    = errors.New("level: invalid map dimensions")
	ErrTileType      = errors.New("level: unknown tile type")
	ErrLayout        = errors.New("level: incorrect wall layout")
	ErrNegativeScore = errors.New("level: negative score")
	ErrMissingField  = errors.New("level: missing save field")
	ErrIO            = errors.New("level: save file unavailable")
)

// LoadError describes why a map could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Kind    error
	Cause   error
}

func (e *LoadError) Error() string {
	return e.Message
}

func (e *LoadError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Kind != ErrIO && e.Kind != ErrFormat {
		errs = append(errs, ErrFormat)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// IsCorrupted reports whether err means the save data itself is bad, as
// opposed to the file being unreadable.
func IsCorrupted(err error) bool {
	return errors.Is(err, ErrFormat)
}

func dimensionsError(width, height int) error {
	return &LoadError{
		Code: "DIMENSIONS",
		Message: fmt.Sprintf("The map you are trying to load has invalid dimensions. Required width: %d, height: %d",
			width, height),
		Kind: ErrDimensions,
	}
}

func tileTypeError(token string) error {
	return &LoadError{
		Code:    "TILE_TYPE",
		Message: "Unknown tile type loaded",
		Kind:    ErrTileType,
		Cause:   fmt.Errorf("token %q", token),
	}
}

func layoutError(x, y int) error {
	return &LoadError{
		Code:    "LAYOUT",
		Message: "The map layout is incorrect",
		Kind:    ErrLayout,
		Cause:   fmt.Errorf("cell (%d, %d)", x, y),
	}
}

func negativeScoreError(score int) error {
	return &LoadError{
		Code:    "NEGATIVE_SCORE",
		Message: "Loaded negative score",
		Kind:    ErrNegativeScore,
		Cause:   fmt.Errorf("score %d", score),
	}
}

func missingFieldError(cause error) error {
	return &LoadError{
		Code:    "MISSING_FIELD",
		Message: cause.Error(),
		Kind:    ErrMissingField,
		Cause:   cause,
	}
}

func unparsableError(path string, cause error) error {
	return &LoadError{
		Code:    "FORMAT",
		Message: fmt.Sprintf("The file %s does not contain map data", path),
		Kind:    ErrFormat,
		Cause:   cause,
	}
}

func ioError(path string, cause error) error {
	return &LoadError{
		Code:    "IO",
		Message: fmt.Sprintf("Failed to open the file %s", path),
		Kind:    ErrIO,
		Cause:   cause,
	}
}
