package restyclient

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/darksky/client/throttle"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error
type options struct {
	client    *resty.Client
	rt        http.RoundTripper
	timeout   *time.Duration
	userAgent string
	throttle  *throttle.Config
	logger    *slog.Logger
	tracer    trace.Tracer
	baseURL   string
}

// WithRestyClient replaces the default [resty.Client]. The given client
// is configured in place; its retries and cookie jar are disabled.
func WithRestyClient(rc *resty.Client) Option {
	return func(o *options) error {
		if rc == nil {
			return errors.New("resty client must not be nil")
		}
		o.client = rc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] on the resty client.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout.
// No timeout is applied unless this option is given.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithUserAgent replaces resty's default User-Agent header.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

// WithThrottle enables token-bucket rate limiting with the given requests per second and burst capacity.
func WithThrottle(rps, burst int) Option {
	return func(o *options) error {
		if rps <= 0 || burst <= 0 {
			return fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, throttle.ErrMustNotBeZero)
		}
		o.throttle = &throttle.Config{RPS: rps, Burst: burst}
		return nil
	}
}

// WithLogger injects a custom [slog.Logger]. resty's own warnings
// are routed to it as well.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithTracer replaces the tracer obtained from the global
// OpenTelemetry provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// WithBaseURL sends requests to another origin than [darksky.APIURL].
func WithBaseURL(base string) Option {
	return func(o *options) error {
		u, err := url.Parse(base)
		if err != nil {
			return fmt.Errorf("parsing base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q must have a scheme and host", base)
		}
		o.baseURL = strings.TrimSuffix(base, "/")
		return nil
	}
}
