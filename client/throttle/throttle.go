package throttle

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// throttle is an http.RoundTripper, using the time/rate token
// bucket limiter to restrict outbound forecast requests.
type throttle struct {
	limiter *rate.Limiter
	cfg     Config
	next    http.RoundTripper
	logFn   func() *slog.Logger
}

// NewRoundTripper returns an http.RoundTripper that throttles outbound requests
// using a token bucket rate limiter. logFn lazily resolves the logger at request
// time, making option ordering irrelevant. A nil-returning logFn disables logging.
// A nil next falls back to http.DefaultTransport.
func NewRoundTripper(cfg Config, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if next == nil {
		next = http.DefaultTransport
	}

	if logFn == nil {
		logFn = func() *slog.Logger { return nil }
	}

	t := &throttle{
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		cfg:     cfg,
		next:    next,
		logFn:   logFn,
	}

	return t, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	// The request path carries the API token, so only the host is logged.
	var waited time.Duration
	logger := t.logFn()
	if logger != nil && t.limiter.Tokens() < 1 {
		logger.Info("forecast request throttled", "rate", t.cfg.RPS, "burst", t.cfg.Burst, "host", r.URL.Host)

		defer func() {
			logger.Info("throttle wait complete", "waited", waited.String(), "rate", t.cfg.RPS, "burst", t.cfg.Burst)
		}()
	}

	start := time.Now()

	err := t.limiter.Wait(ctx)
	waited = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}
