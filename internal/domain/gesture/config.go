package gesture

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by New when a timing window is not positive.
var ErrInvalidConfig = errors.New("gesture: invalid config")

// Config holds the two timing windows. It is fixed for the classifier's lifetime.
type Config struct {
	// HoldThreshold is the minimum held duration before a press counts as a charge.
	HoldThreshold time.Duration
	// DoubleTapWindow is the maximum gap between a tap's release and the next press
	// for the pair to count as a double tap.
	DoubleTapWindow time.Duration
}

// Validate checks that both windows are positive
func (c Config) Validate() error {
	if c.HoldThreshold <= 0 {
		return fmt.Errorf("%w: hold threshold must be positive, got %v", ErrInvalidConfig, c.HoldThreshold)
	}
	if c.DoubleTapWindow <= 0 {
		return fmt.Errorf("%w: double tap window must be positive, got %v", ErrInvalidConfig, c.DoubleTapWindow)
	}
	return nil
}
