package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDt indicates a tick with a non-positive or NaN elapsed time.
	ErrInvalidDt = errors.New("sim: tick duration must be positive")

	// ErrInvalidRun indicates a headless run configuration that cannot run.
	ErrInvalidRun = errors.New("sim: invalid run configuration")
)

// StepError wraps an error with the tick it happened on.
type StepError struct {
	Tick    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("tick %d (t=%.0fms): %v", e.Tick, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
