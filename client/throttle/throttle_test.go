package throttle

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/adamwoolhether/darksky/internal/forecasttest"
)

func TestNewRoundTripper_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		cfg    Config
		expErr error
	}{
		{
			name:   "Invalid RPS (zero)",
			cfg:    Config{RPS: 0, Burst: 10},
			expErr: ErrMustNotBeZero,
		},
		{
			name:   "Invalid RPS (negative)",
			cfg:    Config{RPS: -5, Burst: 10},
			expErr: ErrMustNotBeZero,
		},
		{
			name:   "Invalid Burst (zero)",
			cfg:    Config{RPS: 10, Burst: 0},
			expErr: ErrMustNotBeZero,
		},
		{
			name:   "Invalid Burst (negative)",
			cfg:    Config{RPS: 10, Burst: -5},
			expErr: ErrMustNotBeZero,
		},
		{
			name: "Valid input",
			cfg:  Config{RPS: 10, Burst: 20},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt, err := NewRoundTripper(tc.cfg, nil, nil)
			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Errorf("exp err %v; got: %v", tc.expErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("exp nil err, got: %v", err)
			}
			if rt == nil {
				t.Error("exp non-nil RoundTripper")
			}
		})
	}
}

func TestThrottleRoundTripper_Behavior(t *testing.T) {
	testCases := []struct {
		name           string
		cfg            Config
		numRequests    int
		reqTimeout     time.Duration
		expectReqErrs  int
		minDuration    time.Duration
		maxDuration    time.Duration
		expectWaitErrs bool
	}{
		{
			name:        "High Limits - Concurrent Load",
			cfg:         Config{RPS: 10000, Burst: 100},
			numRequests: 50,
			maxDuration: 500 * time.Millisecond,
		},
		{
			name:           "Low Limit - Exceed Burst & Timeout Waiting",
			cfg:            Config{RPS: 5, Burst: 2},
			numRequests:    5, // 2 use burst, the rest need 200ms each
			reqTimeout:     50 * time.Millisecond,
			expectReqErrs:  3,
			expectWaitErrs: true,
		},
		{
			name:        "Low Limit - Exceed Burst - Succeed Waiting",
			cfg:         Config{RPS: 10, Burst: 5},
			numRequests: 8, // 5 use burst, 3 wait up to 100ms each
			minDuration: 3 * time.Second / 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := forecasttest.NewServer(t)

			rt, err := NewRoundTripper(tc.cfg, nil, http.DefaultTransport)
			if err != nil {
				t.Fatal(err)
			}
			hc := &http.Client{Transport: rt}

			var wg sync.WaitGroup
			errs := make([]error, tc.numRequests)
			start := time.Now()

			for i := range tc.numRequests {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()

					ctx := t.Context()
					if tc.reqTimeout > 0 {
						var cancel context.CancelFunc
						ctx, cancel = context.WithTimeout(ctx, tc.reqTimeout)
						defer cancel()
					}

					req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/forecast/tok/1,2?units=auto", nil)
					if err != nil {
						errs[idx] = err
						return
					}

					resp, err := hc.Do(req)
					if err != nil {
						errs[idx] = err
						return
					}
					resp.Body.Close()
				}(i)
			}

			wg.Wait()
			duration := time.Since(start)

			var failed int
			for i, err := range errs {
				if err == nil {
					continue
				}

				failed++
				t.Logf("Request %d failed with: %v", i, err)
				if tc.expectWaitErrs && !errors.Is(err, ErrWaitingFailed) {
					t.Errorf("exp err %v; got: %v", ErrWaitingFailed, err)
				}
			}

			if failed != tc.expectReqErrs {
				t.Errorf("expected %d failed requests; got %d", tc.expectReqErrs, failed)
			}
			if got := srv.Hits(); got != tc.numRequests-failed {
				t.Errorf("exp %d server hits; got %d", tc.numRequests-failed, got)
			}
			if tc.minDuration > 0 && duration < tc.minDuration {
				t.Errorf("execution should be slowed down by throttle (>= %v), but took %v", tc.minDuration, duration)
			}
			if tc.maxDuration > 0 && duration > tc.maxDuration {
				t.Errorf("should be fast (< %v); but took %v", tc.maxDuration, duration)
			}
		})
	}
}

func TestThrottleRoundTripper_PreCancelled(t *testing.T) {
	srv := forecasttest.NewServer(t)

	rt, err := NewRoundTripper(Config{RPS: 20, Burst: 10}, nil, http.DefaultTransport)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/forecast/tok/1,2?units=auto", nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = rt.RoundTrip(req)
	if !errors.Is(err, ErrContextEnded) {
		t.Errorf("exp err %v; got: %v", ErrContextEnded, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("exp err %v; got: %v", context.Canceled, err)
	}
	if srv.Hits() != 0 {
		t.Errorf("exp no server hits; got %d", srv.Hits())
	}
}

func TestThrottleRoundTripper_LogsWithoutToken(t *testing.T) {
	srv := forecasttest.NewServer(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rt, err := NewRoundTripper(Config{RPS: 50, Burst: 1}, func() *slog.Logger { return logger }, http.DefaultTransport)
	if err != nil {
		t.Fatal(err)
	}

	const token = "s3cr3t-token"
	for range 3 {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/forecast/"+token+"/1,2?units=auto", nil)
		if err != nil {
			t.Fatal(err)
		}

		resp, err := rt.RoundTrip(req)
		if err != nil {
			t.Fatalf("exp nil err, got: %v", err)
		}
		resp.Body.Close()
	}

	logs := buf.String()
	if !strings.Contains(logs, "forecast request throttled") {
		t.Errorf("exp throttle log, got: %s", logs)
	}
	if !strings.Contains(logs, "throttle wait complete") {
		t.Errorf("exp wait complete log, got: %s", logs)
	}
	if strings.Contains(logs, token) {
		t.Errorf("exp logs to omit the token, got: %s", logs)
	}
}
