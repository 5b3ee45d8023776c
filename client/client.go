package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/darksky"
	"github.com/adamwoolhether/darksky/client/throttle"
)

// defaultChunkSize is the number of bytes pulled from a response
// body per read unless WithChunkSize says otherwise.
const defaultChunkSize = 4 << 10 // 4KB

const tracerName = "github.com/adamwoolhether/darksky/client"

var _ darksky.Requester = (*Client)(nil)

// execFn represents a func to operate on a response.
type execFn func(response *http.Response) error

// Client is the [net/http] forecast requester. It streams response
// bodies chunk by chunk. A Client is safe for concurrent use; connection
// pooling is left to the underlying [http.Client].
type Client struct {
	c         *http.Client
	logger    *slog.Logger
	tracer    trace.Tracer
	baseURL   string
	chunkSize int
}

// Build creates a [Client] with the provided options.
// If not specified, a fresh [http.Client] over [http.DefaultTransport] is used.
func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		c:         &http.Client{},
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
		baseURL:   darksky.APIURL,
		chunkSize: defaultChunkSize,
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		cpy := *opts.client
		client.c = &cpy
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

	if opts.chunkSize > 0 {
		client.chunkSize = opts.chunkSize
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(*opts.throttle, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// GetForecast retrieves the forecast for the given coordinates with
// units=auto. Every returned error is a [*darksky.Error].
func (c *Client) GetForecast(ctx context.Context, token string, latitude, longitude float64) (*darksky.Forecast, error) {
	ctx, span := c.tracer.Start(ctx, "darksky.GetForecast", trace.WithAttributes(
		attribute.String("darksky.backend", "net/http"),
		attribute.Float64("darksky.latitude", latitude),
		attribute.Float64("darksky.longitude", longitude),
	))
	defer span.End()

	data, err := c.Fetch(ctx, darksky.URIWithBase(c.baseURL, token, latitude, longitude))
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	forecast, err := darksky.Decode(data)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	return forecast, nil
}

// Fetch issues a GET against rawURL and returns the complete response
// body. The status code is not inspected. It is the building block for
// requests with options:
//
//	u, err := darksky.URIOptioned(token, lat, long, "", opts.Map())
//	body, err := c.Fetch(ctx, u)
//	forecast, err := darksky.Decode(body)
//
// A rawURL that is not a valid request target fails with
// [darksky.ErrURI] before anything is sent. Network and body read
// failures, cancellation included, fail with [darksky.ErrTransport].
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := darksky.ParseURI(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &darksky.Error{Kind: darksky.ErrURI, Err: err}
	}

	var data []byte
	streamFn := func(resp *http.Response) error {
		var err error
		data, err = c.stream(ctx, resp.Body)
		return err
	}

	if err := c.exec(req, streamFn); err != nil {
		return nil, darksky.TransportError(err)
	}

	return data, nil
}

// exec runs the request and the injected function on its response,
// then drains and closes the body. A body the function failed on is
// closed without draining.
func (c *Client) exec(req *http.Request, fn execFn) error {
	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("exec http do: %w", err)
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				c.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if err := fn(resp); err != nil {
		discardBody = false
		return fmt.Errorf("reading body: %w", err)
	}

	return nil
}

// stream pulls body chunk by chunk until EOF, appending every chunk
// to a single buffer.
func (c *Client) stream(ctx context.Context, body io.Reader) ([]byte, error) {
	r := &contextReader{ctx: ctx, r: body}
	chunk := make([]byte, c.chunkSize)

	var data []byte
	for {
		n, err := r.Read(chunk)
		data = append(data, chunk[:n]...)

		switch {
		case errors.Is(err, io.EOF):
			return data, nil
		case err != nil:
			return nil, err
		}
	}
}

// contextReader stops reading once ctx is done, even if the
// underlying reader would block or keep returning data.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}

	return cr.r.Read(p)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
