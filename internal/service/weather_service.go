package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"ulascansenturk/home-weather-service/internal/db/weatherquery"
	"ulascansenturk/home-weather-service/internal/location"
)

var ErrHistoryDisabled = errors.New("weather history is not configured")

type WeatherService interface {
	// Resolve runs one activation to completion, or until ctx ends, and
	// returns whatever the display state holds at that point.
	Resolve(ctx context.Context, device location.Provider) (SessionView, error)
	History(ctx context.Context, limit int) ([]weatherquery.WeatherQuery, error)
}

type weatherService struct {
	resolver LocationWeatherResolver
	history  historyRecorder
}

func NewWeatherService(resolver LocationWeatherResolver, repo weatherquery.Repository) WeatherService {
	return &weatherService{
		resolver: resolver,
		history:  historyRecorder{repo: repo},
	}
}

func (s *weatherService) Resolve(ctx context.Context, device location.Provider) (SessionView, error) {
	if err := ctx.Err(); err != nil {
		return SessionView{}, err
	}

	session := NewSession(ctx, uuid.NewString())
	results := make(chan Result, 1)

	go func() {
		results <- s.resolver.Resolve(session.Context(), device, session)
	}()

	select {
	case result := <-results:
		s.history.record(result)
		return session.View(), nil
	case <-ctx.Done():
		view := session.View()
		session.Close()
		return view, nil
	}
}

func (s *weatherService) History(ctx context.Context, limit int) ([]weatherquery.WeatherQuery, error) {
	if s.history.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.repo.GetRecentWeatherQueries(ctx, limit)
}
