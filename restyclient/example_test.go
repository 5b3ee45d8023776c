package restyclient_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/adamwoolhether/darksky"
	"github.com/adamwoolhether/darksky/restyclient"
)

func ExampleClient_GetForecast() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"latitude":51.5,"longitude":-0.12,"timezone":"Europe/London","currently":{"time":1450000000,"temperature":8.5}}`)
	}))
	defer ts.Close()

	c, err := restyclient.Build(
		restyclient.WithBaseURL(ts.URL),
		restyclient.WithTimeout(5*time.Second),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	forecast, err := c.GetForecast(context.Background(), "token", 51.5, -0.12)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(forecast.Timezone, *forecast.Currently.Temperature)
	// Output: Europe/London 8.5
}

func ExampleClient_Fetch_transportFailure() {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c, _ := restyclient.Build()

	_, err := c.Fetch(context.Background(), darksky.URIWithBase(ts.URL, "token", 1, 2))
	fmt.Println(errors.Is(err, darksky.ErrTransport))
	// Output: true
}
