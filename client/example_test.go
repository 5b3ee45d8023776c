package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/adamwoolhether/darksky"
	"github.com/adamwoolhether/darksky/client"
)

const exampleBody = `{"latitude":37.8267,"longitude":-122.4233,"timezone":"America/Los_Angeles","currently":{"time":1450000000,"summary":"Drizzle","temperature":51.42}}`

func ExampleBuild() {
	c, err := client.Build(
		client.WithTimeout(10*time.Second),
		client.WithUserAgent("example/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleClient_GetForecast() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, exampleBody)
	}))
	defer ts.Close()

	c, err := client.Build(client.WithBaseURL(ts.URL))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	forecast, err := c.GetForecast(context.Background(), "token", 37.8267, -122.4233)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(forecast.Timezone, *forecast.Currently.Summary)
	// Output: America/Los_Angeles Drizzle
}

func ExampleClient_Fetch() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Println(r.URL.RequestURI())
		fmt.Fprint(w, exampleBody)
	}))
	defer ts.Close()

	c, _ := client.Build(client.WithBaseURL(ts.URL))

	opts := darksky.NewOptions().Exclude(darksky.BlockMinutely).Unit(darksky.UnitSI)
	u, err := darksky.URIOptionedWithBase(ts.URL, "token", 37.8267, -122.4233, "", opts.Map())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	body, err := c.Fetch(context.Background(), u)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	forecast, err := darksky.Decode(body)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(forecast.Latitude)
	// Output:
	// /forecast/token/37.8267,-122.4233?exclude=minutely&units=si&
	// 37.8267
}

func ExampleClient_GetForecast_invalidToken() {
	c, _ := client.Build()

	_, err := c.GetForecast(context.Background(), "not a token", 1, 2)
	fmt.Println(errors.Is(err, darksky.ErrURI))
	// Output: true
}
