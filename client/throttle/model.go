package throttle

import (
	"errors"
	"fmt"
)

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("throttle context ended")
)

// Config defines the throttler's
// Requests Per Second and Burst Rate
type Config struct {
	RPS   int
	Burst int
}

func (c Config) validate() error {
	if c.RPS <= 0 || c.Burst <= 0 {
		return fmt.Errorf("rps[%d] and burst[%d] %w", c.RPS, c.Burst, ErrMustNotBeZero)
	}

	return nil
}
