package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/home-weather-service/internal/location"
	"ulascansenturk/home-weather-service/internal/providers"
)

// Result reports what a resolution obtained. Nil or empty fields did not resolve.
type Result struct {
	Coordinates *location.Coordinates
	Weather     *providers.CurrentWeather
	Place       string
}

type LocationWeatherResolver interface {
	Resolve(ctx context.Context, device location.Provider, session *Session) Result
}

type locationWeatherResolver struct {
	forecast providers.ForecastProvider
	geocoder providers.Geocoder
}

func NewLocationWeatherResolver(forecast providers.ForecastProvider, geocoder providers.Geocoder) LocationWeatherResolver {
	return &locationWeatherResolver{
		forecast: forecast,
		geocoder: geocoder,
	}
}

// Resolve fills the session's display state. Every failure ends up as a
// placeholder in the fields it owns; nothing is retried.
func (r *locationWeatherResolver) Resolve(ctx context.Context, device location.Provider, session *Session) Result {
	defer session.markComplete()

	var result Result

	status, err := device.RequestForegroundPermission(ctx)
	if err != nil {
		log.Warn().Err(err).Str("session", session.ID).Msg("location permission check failed")
		session.Apply(placeUpdate(PlaceLocationError))
		return result
	}

	if status != location.PermissionGranted {
		session.Apply(placeUpdate(PlacePermissionDenied))
		return result
	}

	coords, err := device.CurrentPosition(ctx)
	if err != nil {
		log.Warn().Err(err).Str("session", session.ID).Msg("current position unavailable")
		session.Apply(placeUpdate(PlaceLocationError))
		return result
	}
	result.Coordinates = &coords

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if current, ok := r.resolveWeather(ctx, coords, session); ok {
			result.Weather = &current
		}
	}()

	go func() {
		defer wg.Done()
		if place, ok := r.resolvePlace(ctx, coords, session); ok {
			result.Place = place
		}
	}()

	wg.Wait()

	return result
}

func (r *locationWeatherResolver) resolveWeather(ctx context.Context, coords location.Coordinates, session *Session) (providers.CurrentWeather, bool) {
	current, err := r.forecast.CurrentWeather(ctx, coords)
	switch {
	case errors.Is(err, providers.ErrWeatherUnavailable):
		session.Apply(conditionUpdate(ConditionUnavailable))
		return providers.CurrentWeather{}, false
	case err != nil:
		log.Warn().Err(err).Str("session", session.ID).Stringer("coordinates", coords).Msg("weather fetch failed")
		session.Apply(conditionUpdate(ConditionWeatherError))
		return providers.CurrentWeather{}, false
	}

	session.Apply(weatherUpdate(current.Temperature, current.WeatherCode))
	return current, true
}

func (r *locationWeatherResolver) resolvePlace(ctx context.Context, coords location.Coordinates, session *Session) (string, bool) {
	place, err := r.geocoder.ReversePlaceName(ctx, coords)
	switch {
	case errors.Is(err, providers.ErrPlaceUnavailable):
		session.Apply(placeUpdate(PlaceUnknown))
		return "", false
	case err != nil:
		log.Warn().Err(err).Str("session", session.ID).Stringer("coordinates", coords).Msg("place name fetch failed")
		session.Apply(placeUpdate(PlaceLookupError))
		return "", false
	}

	session.Apply(placeUpdate(place))
	return place, true
}
