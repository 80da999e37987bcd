package service_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"
	"ulascansenturk/home-weather-service/internal/db/weatherquery"
	"ulascansenturk/home-weather-service/internal/location"
	"ulascansenturk/home-weather-service/internal/mocks"
	"ulascansenturk/home-weather-service/internal/providers"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/home-weather-service/internal/service"
)

type WeatherServiceTestSuite struct {
	suite.Suite
	forecast *mocks.MockForecastProvider
	geocoder *mocks.MockGeocoder
	repo     *mocks.MockWeatherQueryRepository
	service  service.WeatherService
	ctx      context.Context
	device   location.Provider
	coords   location.Coordinates
}

func (s *WeatherServiceTestSuite) SetupTest() {
	s.forecast = mocks.NewMockForecastProvider(s.T())
	s.geocoder = mocks.NewMockGeocoder(s.T())
	s.repo = mocks.NewMockWeatherQueryRepository(s.T())
	s.service = service.NewWeatherService(service.NewLocationWeatherResolver(s.forecast, s.geocoder), s.repo)
	s.ctx = context.Background()
	s.coords = location.Coordinates{Latitude: 48.2, Longitude: 16.37}

	report, err := location.ParseReport(url.Values{"permission": {"granted"}, "lat": {"48.2"}, "lon": {"16.37"}})
	s.Require().NoError(err)
	s.device = location.NewReportedDevice(report)
}

func (s *WeatherServiceTestSuite) TestResolveRecordsHistory() {
	logged := make(chan *weatherquery.WeatherQuery, 1)

	s.forecast.On("CurrentWeather", mock.Anything, s.coords).
		Return(providers.CurrentWeather{Temperature: 15.2, WeatherCode: 45}, nil)
	s.geocoder.On("ReversePlaceName", mock.Anything, s.coords).Return("Vienna", nil)
	s.repo.On("LogWeatherQuery", mock.Anything, mock.AnythingOfType("*weatherquery.WeatherQuery")).
		Run(func(args mock.Arguments) {
			logged <- args.Get(1).(*weatherquery.WeatherQuery)
		}).
		Return(nil)

	view, err := s.service.Resolve(s.ctx, s.device)

	s.NoError(err)
	s.True(view.Complete)
	s.Equal(service.DisplayState{
		Place:       "Vienna",
		Temperature: "15",
		Condition:   "Foggy",
		Range:       "12°C — 18°C",
	}, view.State)

	select {
	case query := <-logged:
		s.Equal("Vienna", query.Place)
		s.Equal(48.2, query.Latitude)
		s.Equal(16.37, query.Longitude)
		s.Equal(15.2, query.Temperature)
		s.Equal(45, query.WeatherCode)
		s.Equal("Foggy", query.Condition)
	case <-time.After(time.Second):
		s.Fail("history was not recorded")
	}
}

func (s *WeatherServiceTestSuite) TestResolveDoesNotRecordFailedWeather() {
	s.forecast.On("CurrentWeather", mock.Anything, s.coords).
		Return(providers.CurrentWeather{}, errors.New("forecast request failed"))
	s.geocoder.On("ReversePlaceName", mock.Anything, s.coords).Return("Vienna", nil)

	view, err := s.service.Resolve(s.ctx, s.device)

	s.NoError(err)
	s.Equal("Weather error", view.State.Condition)
	s.Equal("Vienna", view.State.Place)

	time.Sleep(20 * time.Millisecond)
	s.repo.AssertNotCalled(s.T(), "LogWeatherQuery", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestResolveReturnsPartialStateAtDeadline() {
	s.forecast.On("CurrentWeather", mock.Anything, s.coords).
		Return(providers.CurrentWeather{Temperature: 30, WeatherCode: 0}, nil)
	releasePlace := make(chan struct{})
	defer close(releasePlace)

	s.geocoder.On("ReversePlaceName", mock.Anything, s.coords).
		Run(func(mock.Arguments) { <-releasePlace }).
		Return("", context.DeadlineExceeded)

	ctx, cancel := context.WithTimeout(s.ctx, 100*time.Millisecond)
	defer cancel()

	view, err := s.service.Resolve(ctx, s.device)

	s.NoError(err)
	s.False(view.Complete)
	s.Equal(service.DisplayState{
		Place:       "Fetching location...",
		Temperature: "30",
		Condition:   "Clear Sky",
		Range:       "27°C — 33°C",
	}, view.State)
	s.repo.AssertNotCalled(s.T(), "LogWeatherQuery", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestResolveWithCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.Resolve(ctx, s.device)
	s.ErrorIs(err, context.Canceled)
}

func (s *WeatherServiceTestSuite) TestHistory() {
	expected := []weatherquery.WeatherQuery{{ID: 1, Place: "Vienna"}}
	s.repo.On("GetRecentWeatherQueries", mock.Anything, 5).Return(expected, nil)

	queries, err := s.service.History(s.ctx, 5)

	s.NoError(err)
	s.Equal(expected, queries)
}

func (s *WeatherServiceTestSuite) TestHistoryDisabledWithoutRepository() {
	svc := service.NewWeatherService(service.NewLocationWeatherResolver(s.forecast, s.geocoder), nil)

	_, err := svc.History(s.ctx, 5)
	s.ErrorIs(err, service.ErrHistoryDisabled)
}

func TestWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}
