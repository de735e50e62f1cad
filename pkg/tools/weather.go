package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ehartanto/toolchat/pkg/chat"
	"github.com/mitchellh/mapstructure"
)

const defaultWeatherBaseURL = "https://api.open-meteo.com"

// ErrWeatherPayload reports a weather response missing the current
// temperature field.
var ErrWeatherPayload = errors.New("weather payload missing current temperature")

// WeatherTool looks up the current temperature for a coordinate pair via the
// open-meteo forecast API.
type WeatherTool struct {
	// BaseURL overrides the open-meteo endpoint, for tests.
	BaseURL string
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// NewWeatherTool builds a WeatherTool against the public open-meteo API.
func NewWeatherTool() *WeatherTool {
	return &WeatherTool{}
}

// Declaration implements Tool.
func (t *WeatherTool) Declaration() chat.ToolDeclaration {
	return chat.ToolDeclaration{
		Name:        "get_weather",
		Description: "Get the current weather for a location",
		Params: []chat.ToolParam{
			{Name: "latitude", Type: "number"},
			{Name: "longitude", Type: "number"},
		},
		Required: []string{"latitude", "longitude"},
	}
}

type weatherRequest struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// forecastPayload mirrors the slice of the open-meteo response we read.
// Pointers distinguish an absent field from a zero reading.
type forecastPayload struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
	} `json:"current"`
}

// Execute implements Tool. Transport failures and malformed payloads are hard
// errors; there is no soft-failure path for weather.
func (t *WeatherTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req weatherRequest
	if err := mapstructure.Decode(args, &req); err != nil {
		return "", fmt.Errorf("decode arguments: %w", err)
	}

	base := t.BaseURL
	if base == "" {
		base = defaultWeatherBaseURL
	}
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%s&longitude=%s&current=temperature_2m,wind_speed_10m&hourly=temperature_2m,relative_humidity_2m,wind_speed_10m",
		base,
		strconv.FormatFloat(req.Latitude, 'f', -1, 64),
		strconv.FormatFloat(req.Longitude, 'f', -1, 64),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}

	client := t.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch weather: unexpected status %d", resp.StatusCode)
	}

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode weather response: %w", err)
	}
	if payload.Current.Temperature == nil {
		return "", ErrWeatherPayload
	}

	return strconv.FormatFloat(*payload.Current.Temperature, 'f', -1, 64), nil
}
