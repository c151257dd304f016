package seriesgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seriesgo/internal/lazy"
)

var (
	// ErrConflictingConfig is returned when a series is configured with both
	// values and pairs.
	ErrConflictingConfig = errors.New("values and pairs are mutually exclusive")

	// ErrUnknownConfig is returned when a configuration has no recognizable
	// shape (for example an index with neither values nor pairs).
	ErrUnknownConfig = errors.New("configuration has no recognizable shape")

	// ErrDefaultIndexType is returned when values are supplied without an
	// index and the key type is not int, so no sequential default index can
	// be synthesized.
	ErrDefaultIndexType = errors.New("default index requires int keys")

	// ErrSourceConsumed is returned when a terminal operation is invoked on
	// an unbaked series whose single-pass source has already been claimed by
	// a prior traversal. Bake the series before consuming it more than once.
	ErrSourceConsumed = errors.New("single-pass source already consumed")
)

// LengthMismatchError indicates that the index and value sequences of a
// series differ in cardinality. For slice-backed configurations it is
// detected at construction; for iterable-backed configurations it is
// detected at the first full traversal, after both sequences have been
// drained, so Keys and Values report the exact counts.
type LengthMismatchError struct {
	Keys   int
	Values int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: index has %d keys, values has %d elements", e.Keys, e.Values)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, lazy.ErrConsumed) {
		return fmt.Errorf("%w: %w", ErrSourceConsumed, err)
	}
	return err
}
