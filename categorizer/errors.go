package categorizer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when a vectorizer is given no documents.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrAlreadyFitted is returned when a vectorizer is fitted a second time.
	ErrAlreadyFitted = errors.New("vectorizer already fitted")
	// ErrInvalidK is returned for a non-positive top-k request.
	ErrInvalidK = errors.New("k must be positive")
	// ErrLengthMismatch is returned when scorer inputs do not line up.
	ErrLengthMismatch = errors.New("length mismatch")
)

// MalformedRowError reports a row with too few fields.
type MalformedRowError struct {
	Path string
	Line int
	Want int
	Got  int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s:%d: malformed row: want at least %d fields, got %d", e.Path, e.Line, e.Want, e.Got)
}

// MissingFieldError reports an example lacking one of the text fields the corpus needs.
type MissingFieldError struct {
	MotionID string
	Example  int
	Field    int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("motion %s example %d: missing field %d", e.MotionID, e.Example, e.Field)
}

// UnknownCodeError reports a reference code that has no entry in the code dictionary.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("code %s not found in code dictionary", e.Code)
}
