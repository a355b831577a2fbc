package digest

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for this package. Callers match them with errors.Is; the
// concrete error types below carry the rejected selector or the recovered
// failure for reporting. All of them are returned to the immediate caller
// and never logged or swallowed inside the package.
var (
	ErrInvalidEncoding  = errors.New("invalid encoding")
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
	ErrNonUTF8Digest    = errors.New("digest bytes are not valid utf-8")
	ErrSessionPoisoned  = errors.New("session poisoned by prior failure")
)

// InvalidEncodingError reports an encoding selector that matched no known
// Encoding. It unwraps to ErrInvalidEncoding.
type InvalidEncodingError struct {
	Selector any
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding selector %v (%T)", e.Selector, e.Selector)
}

func (e *InvalidEncodingError) Unwrap() error { return ErrInvalidEncoding }

// InvalidAlgorithmError reports an algorithm selector outside the supported
// set. It unwraps to ErrInvalidAlgorithm.
type InvalidAlgorithmError struct {
	Selector any
}

func (e *InvalidAlgorithmError) Error() string {
	return fmt.Sprintf("invalid algorithm selector %v (%T)", e.Selector, e.Selector)
}

func (e *InvalidAlgorithmError) Unwrap() error { return ErrInvalidAlgorithm }

// PoisonedError records a failure raised inside a session's critical section.
// It unwraps to ErrSessionPoisoned.
type PoisonedError struct {
	Cause any
}

func (e *PoisonedError) Error() string {
	return fmt.Sprintf("session poisoned by prior failure: %v", e.Cause)
}

func (e *PoisonedError) Unwrap() error { return ErrSessionPoisoned }
