package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

var (
	ErrNoAPIKey = errors.New("weather api key not configured")
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from the OpenWeather API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// NewClientWithBaseURL points the client at a custom endpoint, for tests.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type apiResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Fetch returns the current conditions at the given coordinates as a
// timestamped snapshot. Callers must pair every failure with the
// configured fallback; the engine never propagates a weather error.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%.4f", lat))
	query.Set("lon", fmt.Sprintf("%.4f", lon))
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return domain.NewWeatherSnapshot(payload.Main.Temp, payload.Main.Humidity, description, c.now()), nil
}
