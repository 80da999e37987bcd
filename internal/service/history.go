package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/home-weather-service/internal/db/weatherquery"
)

const historyWriteTimeout = 5 * time.Second

// historyRecorder appends resolved activations to the weather query log.
// Activations whose weather did not resolve are not stored.
type historyRecorder struct {
	repo weatherquery.Repository
}

func (h historyRecorder) record(result Result) {
	if h.repo == nil || result.Coordinates == nil || result.Weather == nil {
		return
	}

	query := &weatherquery.WeatherQuery{
		Latitude:    result.Coordinates.Latitude,
		Longitude:   result.Coordinates.Longitude,
		Place:       result.Place,
		Temperature: result.Weather.Temperature,
		WeatherCode: result.Weather.WeatherCode,
		Condition:   ConditionLabel(result.Weather.WeatherCode),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()

		if err := h.repo.LogWeatherQuery(ctx, query); err != nil {
			log.Error().Err(err).Msg("Failed to log weather query")
		}
	}()
}
