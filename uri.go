package darksky

import (
	"fmt"
	"io"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// URI formats the request uri for a forecast without options.
//
//	URI("abc", -7.3, 8.17) // https://api.darksky.net/forecast/abc/-7.3,8.17?units=auto
func URI(token string, lat, long float64) string {
	return URIWithBase(APIURL, token, lat, long)
}

// URIWithBase is [URI] against another origin.
func URIWithBase(base, token string, lat, long float64) string {
	return base + "/forecast/" + token + "/" + formatCoord(lat) + "," + formatCoord(long) + "?units=auto"
}

// URIOptioned formats the request uri for a forecast with options.
//
// A non-empty time is appended verbatim after the longitude. An empty
// time means no time segment at all; no lone `,` is written. The query
// always starts with `?` and every option is written as `key=value&`,
// so an empty options map leaves a bare trailing `?` and a non-empty one
// leaves a trailing `&`. The remote API accepts both forms and they are
// kept as-is.
//
// Options are written in ascending key order, so the same input always
// yields the same bytes.
func URIOptioned(token string, lat, long float64, time string, options map[string]string) (string, error) {
	return URIOptionedWithBase(APIURL, token, lat, long, time, options)
}

// URIOptionedWithBase is [URIOptioned] against another origin.
func URIOptionedWithBase(base, token string, lat, long float64, time string, options map[string]string) (string, error) {
	var b strings.Builder
	if err := writeOptioned(&b, base, token, lat, long, time, options); err != nil {
		return "", &Error{Kind: ErrFormat, Err: err}
	}

	return b.String(), nil
}

func writeOptioned(w io.Writer, base, token string, lat, long float64, time string, options map[string]string) error {
	if _, err := fmt.Fprintf(w, "%s/forecast/%s/%s,%s", base, token, formatCoord(lat), formatCoord(long)); err != nil {
		return err
	}

	if time != "" {
		if _, err := io.WriteString(w, ","+time); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "?"); err != nil {
		return err
	}

	for _, k := range slices.Sorted(maps.Keys(options)) {
		if _, err := io.WriteString(w, k+"="+options[k]+"&"); err != nil {
			return err
		}
	}

	return nil
}

// formatCoord renders f with the fewest digits that round-trip, never
// using exponent notation.
func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseURI parses raw into a request target. Besides what [url.Parse]
// rejects, it refuses any byte outside the RFC 3986 character set, such
// as spaces, control characters, or `|`. A fragment is never part of a
// request target, so `#` is refused too. Failures are [ErrURI] errors.
func ParseURI(raw string) (*url.URL, error) {
	for i := 0; i < len(raw); i++ {
		if !isTargetByte(raw[i]) {
			return nil, &Error{Kind: ErrURI, Err: fmt.Errorf("illegal byte %q at offset %d", raw[i], i)}
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &Error{Kind: ErrURI, Err: err}
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, &Error{Kind: ErrURI, Err: fmt.Errorf("missing scheme or host in %q", raw)}
	}

	return u, nil
}

// isTargetByte reports whether c may appear in a request target:
// unreserved, reserved except '#', or '%'.
func isTargetByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-._~:/?[]@!$&'()*+,;=%", c) >= 0
}
