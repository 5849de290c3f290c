package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sippyapp/sippy-engine/internal/adapters/weather"
	"github.com/stretchr/testify/assert"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "13.0827", r.URL.Query().Get("lat"))
		assert.Equal(t, "80.2707", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main":{"temp":36.2,"humidity":78},"weather":[{"description":"haze"}]}`))
	}))
	defer server.Close()

	client := weather.NewClientWithBaseURL("test-key", server.URL)

	snapshot, err := client.Fetch(context.Background(), 13.0827, 80.2707)
	assert.NoError(t, err)
	assert.Equal(t, 36.2, snapshot.TempC)
	assert.Equal(t, 78.0, snapshot.HumidityPct)
	assert.Equal(t, "haze", snapshot.Description)
}

func TestFetchWithoutAPIKey(t *testing.T) {
	client := weather.NewClient("")

	_, err := client.Fetch(context.Background(), 13, 80)
	assert.ErrorIs(t, err, weather.ErrNoAPIKey)
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := weather.NewClientWithBaseURL("bad-key", server.URL)

	_, err := client.Fetch(context.Background(), 13, 80)
	assert.Error(t, err)
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := weather.NewClientWithBaseURL("test-key", server.URL)

	_, err := client.Fetch(context.Background(), 13, 80)
	assert.Error(t, err)
}
