// Package darksky provides the transport-agnostic core of a Dark Sky
// forecast client: request URI construction, response decoding, and a
// single error type covering every failure of the pipeline.
//
// # Fetching a Forecast
//
// Pick a [Requester] implementation and call GetForecast:
//
//	c, err := client.Build(client.WithTimeout(10 * time.Second))
//	forecast, err := c.GetForecast(ctx, token, 37.8267, -122.423)
//
// The [github.com/adamwoolhether/darksky/client] package streams the
// response body over [net/http], while
// [github.com/adamwoolhether/darksky/restyclient] reads it in one call
// through go-resty. Both produce identical results for identical
// responses.
//
// # Optioned Requests
//
// GetForecast always requests `units=auto`. To use other [Options],
// build the URL yourself and hand it to an adapter's Fetch:
//
//	opts := darksky.NewOptions().Exclude(darksky.BlockHourly).Unit(darksky.UnitSI)
//	u, err := darksky.URIOptioned(token, lat, long, "", opts.Map())
//	body, err := c.Fetch(ctx, u)
//	forecast, err := darksky.Decode(body)
//
// # Errors
//
// Every failure is returned as an [*Error] whose Kind is one of
// [ErrURI], [ErrTransport], [ErrDecode] or [ErrFormat]:
//
//	if errors.Is(err, darksky.ErrTransport) { ... }
package darksky

import "context"

// APIURL is the origin every request is sent to unless an adapter is
// configured with another base.
const APIURL = "https://api.darksky.net"

// Requester retrieves a forecast over a specific HTTP backend.
// Implementations must be safe for concurrent use.
type Requester interface {
	// GetForecast retrieves the forecast for the given coordinates
	// with units=auto. Any returned error is an *Error.
	GetForecast(ctx context.Context, token string, latitude, longitude float64) (*Forecast, error)
}
