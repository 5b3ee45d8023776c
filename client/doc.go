// Package client provides the streaming [darksky.Requester] built on
// [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Fetching Forecasts
//
// [Client.GetForecast] builds the request uri, streams the response
// body in fixed-size chunks, and decodes it:
//
//	forecast, err := c.GetForecast(ctx, token, 37.8267, -122.423)
//
// For requests with options, build the uri with [darksky.URIOptioned]
// and pass it to [Client.Fetch], then decode the body with
// [darksky.Decode].
//
// # Rate Limiting
//
// [WithThrottle] wraps the transport with the token-bucket
// RoundTripper from [github.com/adamwoolhether/darksky/client/throttle].
// It is off unless requested.
//
// # Cancellation
//
// Cancelling the context passed to GetForecast or Fetch aborts the
// request or the body read. The body is closed, the connection is
// released, and nothing is decoded.
package client
