package sprechpass

import (
	"errors"
	"fmt"
)

// ErrInvalidDigitCount is returned when Generate is called with a negative
// digit count.
var ErrInvalidDigitCount = errors.New("digit count must not be negative")

// ErrEmptyCorpus is returned when a corpus yields no group transitions at
// all.
var ErrEmptyCorpus = errors.New("corpus contains no usable words")

// ErrNoDigitAlphabet is returned when a digit suffix is requested from a
// model whose digit alphabet is empty.
var ErrNoDigitAlphabet = errors.New("model has no digit alphabet")

// MalformedTableError reports a chain value that is missing from the next
// stage's keys. It can only arise from an externally supplied table set;
// tables built by Builder always chain.
type MalformedTableError struct {
	Stage Stage
	Key   string
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("malformed model: %s table has no entry for %q", e.Stage, e.Key)
}

// EmptyTableError reports a build run that produced no entries for one
// stage, typically because the corpus is too small for the boundary filter
// or the downstream allow-set rejected every candidate.
type EmptyTableError struct {
	Stage Stage
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("no qualifying pairs for %s table", e.Stage)
}
