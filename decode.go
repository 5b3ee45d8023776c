package darksky

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// required holds the fields every forecast response carries. Decoding
// into it first tells an API error object, or a bare null, apart from
// a forecast.
type required struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timezone  *string  `json:"timezone"`
}

// Decode parses a response body into a [Forecast]. Decoding is all or
// nothing: on failure the forecast is nil and the error is an [ErrDecode]
// [*Error].
func Decode(data []byte) (*Forecast, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &Error{Kind: ErrDecode, Err: errors.New("empty body")}
	}

	var req required
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &Error{Kind: ErrDecode, Err: err}
	}

	switch {
	case req.Latitude == nil:
		return nil, &Error{Kind: ErrDecode, Err: fmt.Errorf("missing field %q", "latitude")}
	case req.Longitude == nil:
		return nil, &Error{Kind: ErrDecode, Err: fmt.Errorf("missing field %q", "longitude")}
	case req.Timezone == nil:
		return nil, &Error{Kind: ErrDecode, Err: fmt.Errorf("missing field %q", "timezone")}
	}

	var forecast Forecast
	if err := json.Unmarshal(data, &forecast); err != nil {
		return nil, &Error{Kind: ErrDecode, Err: err}
	}

	return &forecast, nil
}
