package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"ulascansenturk/home-weather-service/internal/location"
)

const (
	minPlausibleTemperature = -100
	maxPlausibleTemperature = 100
)

// ErrWeatherUnavailable means the forecast response carried no current conditions.
var ErrWeatherUnavailable = errors.New("current weather unavailable")

type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weathercode"`
}

type ForecastProvider interface {
	CurrentWeather(ctx context.Context, coords location.Coordinates) (CurrentWeather, error)
}

type openMeteoForecast struct {
	upstream *upstream
}

func NewOpenMeteoForecast(baseURL string, client *http.Client) ForecastProvider {
	return &openMeteoForecast{
		upstream: newUpstream("forecast", baseURL, "", client),
	}
}

type forecastResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

func (p *openMeteoForecast) CurrentWeather(ctx context.Context, coords location.Coordinates) (CurrentWeather, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Set("current_weather", "true")

	body, err := p.upstream.get(ctx, params)
	if err != nil {
		return CurrentWeather{}, err
	}

	var apiResp forecastResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return CurrentWeather{}, fmt.Errorf("forecast returned malformed JSON: %w", err)
	}

	if apiResp.CurrentWeather == nil {
		return CurrentWeather{}, ErrWeatherUnavailable
	}

	current := *apiResp.CurrentWeather
	if current.Temperature < minPlausibleTemperature || current.Temperature > maxPlausibleTemperature {
		return CurrentWeather{}, fmt.Errorf("forecast returned unlikely temperature value: %f", current.Temperature)
	}

	return current, nil
}
