// Package restyclient provides the buffering [darksky.Requester] built
// on go-resty. The whole response body is read in a single call, which
// makes it a drop-in alternative to the streaming
// [github.com/adamwoolhether/darksky/client] for identical results.
//
//	c, err := restyclient.Build(restyclient.WithTimeout(10 * time.Second))
//	forecast, err := c.GetForecast(ctx, token, 37.8267, -122.423)
package restyclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/darksky"
	"github.com/adamwoolhether/darksky/client/throttle"
)

const tracerName = "github.com/adamwoolhether/darksky/restyclient"

var _ darksky.Requester = (*Client)(nil)

// Client is the go-resty forecast requester. It is safe for concurrent
// use once built.
type Client struct {
	rc      *resty.Client
	logger  *slog.Logger
	tracer  trace.Tracer
	baseURL string
}

// Build creates a [Client] with the provided options.
// If not specified, a new [resty.Client] is used. Retries and the
// cookie jar are always disabled, so no state carries over between calls.
func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
		baseURL: darksky.APIURL,
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	rc := opts.client
	if rc == nil {
		rc = resty.New()
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.baseURL != "" {
		client.baseURL = opts.baseURL
	}

	rc.SetLogger(slogAdapter{logger: client.logger})
	rc.SetRetryCount(0)
	rc.SetCookieJar(nil)

	if opts.timeout != nil {
		rc.SetTimeout(*opts.timeout)
	}

	if opts.userAgent != "" {
		rc.SetHeader("User-Agent", opts.userAgent)
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case rc.GetClient().Transport != nil:
		transport = rc.GetClient().Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(*opts.throttle, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	rc.SetTransport(transport)

	client.rc = rc

	return client, nil
}

// GetForecast retrieves the forecast for the given coordinates with
// units=auto. Every returned error is a [*darksky.Error].
func (c *Client) GetForecast(ctx context.Context, token string, latitude, longitude float64) (*darksky.Forecast, error) {
	ctx, span := c.tracer.Start(ctx, "darksky.GetForecast", trace.WithAttributes(
		attribute.String("darksky.backend", "resty"),
		attribute.Float64("darksky.latitude", latitude),
		attribute.Float64("darksky.longitude", longitude),
	))
	defer span.End()

	data, err := c.Fetch(ctx, darksky.URIWithBase(c.baseURL, token, latitude, longitude))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	forecast, err := darksky.Decode(data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return forecast, nil
}

// Fetch issues a GET against rawURL and returns the complete response
// body, read in one call. The status code is not inspected.
//
// A rawURL that is not a valid request target fails with
// [darksky.ErrURI] before anything is sent. Network and body read
// failures, cancellation included, fail with [darksky.ErrTransport].
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := darksky.ParseURI(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.rc.R().SetContext(ctx).Get(u.String())
	if err != nil {
		return nil, darksky.TransportError(fmt.Errorf("exec resty get: %w", err))
	}

	return resp.Body(), nil
}

// slogAdapter routes resty's printf-style logging to slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Errorf(format string, v ...any) {
	a.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "resty")
}

func (a slogAdapter) Warnf(format string, v ...any) {
	a.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "resty")
}

func (a slogAdapter) Debugf(format string, v ...any) {
	a.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "resty")
}
