// Package forecasttest provides a canned forecast API for tests.
package forecasttest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// Body is a forecast response trimmed from a real API reply.
const Body = `{
  "latitude": 37.8267,
  "longitude": -122.4233,
  "timezone": "America/Los_Angeles",
  "offset": -8,
  "currently": {
    "time": 1450000000,
    "summary": "Mostly Cloudy",
    "icon": "partly-cloudy-night",
    "nearestStormDistance": 0,
    "precipIntensity": 0.0012,
    "precipProbability": 0.04,
    "precipType": "rain",
    "temperature": 51.42,
    "apparentTemperature": 51.42,
    "dewPoint": 45.61,
    "humidity": 0.81,
    "pressure": 1015.1,
    "windSpeed": 5.32,
    "windGust": 9.77,
    "windBearing": 272,
    "cloudCover": 0.79,
    "uvIndex": 0,
    "visibility": 9.84,
    "ozone": 282.3
  },
  "minutely": {
    "summary": "Mostly cloudy for the hour.",
    "icon": "partly-cloudy-night",
    "data": [
      {"time": 1450000000, "precipIntensity": 0, "precipProbability": 0},
      {"time": 1450000060, "precipIntensity": 0.002, "precipIntensityError": 0.001, "precipProbability": 0.01, "precipType": "rain"}
    ]
  },
  "hourly": {
    "summary": "Light rain starting tomorrow morning.",
    "icon": "rain",
    "data": [
      {"time": 1449997200, "summary": "Mostly Cloudy", "icon": "partly-cloudy-night", "temperature": 51.8},
      {"time": 1450000800, "summary": "Overcast", "icon": "cloudy", "temperature": 51.1}
    ]
  },
  "daily": {
    "summary": "Rain throughout the week.",
    "icon": "rain",
    "data": [
      {
        "time": 1449993600,
        "summary": "Rain in the afternoon.",
        "icon": "rain",
        "sunriseTime": 1450019541,
        "sunsetTime": 1450054507,
        "moonPhase": 0.1,
        "precipIntensityMax": 0.0421,
        "precipIntensityMaxTime": 1450047600,
        "temperatureHigh": 56.2,
        "temperatureHighTime": 1450044000,
        "temperatureLow": 47.1,
        "temperatureLowTime": 1450098000,
        "temperatureMin": 47.9,
        "temperatureMinTime": 1450015200,
        "temperatureMax": 56.2,
        "temperatureMaxTime": 1450044000,
        "uvIndex": 2,
        "uvIndexTime": 1450036800
      }
    ]
  },
  "alerts": [
    {
      "title": "Flood Watch for Mason, WA",
      "regions": ["Mason"],
      "severity": "watch",
      "time": 1449990000,
      "expires": 1450040400,
      "description": "A flood watch is in effect.",
      "uri": "https://alerts.weather.gov/cap/wwacapget.php?x=WA1255E4DB8494.FloodWatch"
    }
  ],
  "flags": {
    "sources": ["nwspa", "cmc", "gfs"],
    "nearest-station": 1.835,
    "units": "us"
  }
}`

// Server is a stand-in for the forecast API. It counts every request
// and serves Body for any path under /forecast/.
type Server struct {
	*httptest.Server

	hits atomic.Int32

	mu      sync.Mutex
	lastURI string
}

// NewServer starts a Server that is closed when the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()

	return NewServerWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(Body))
	})
}

// NewServerWith starts a Server that answers with handler.
func NewServerWith(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()

	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)

		s.mu.Lock()
		s.lastURI = r.URL.RequestURI()
		s.mu.Unlock()

		if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, "/forecast/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		handler(w, r)
	}))
	t.Cleanup(s.Close)

	return s
}

// Hits returns the number of requests received so far.
func (s *Server) Hits() int {
	return int(s.hits.Load())
}

// LastURI returns the request uri of the most recent request.
func (s *Server) LastURI() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastURI
}
