package config_test

import (
	"testing"
	"time"
	"ulascansenturk/home-weather-service/config"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("home-weather-service", conf.ServiceName)
	s.Equal("https://api.open-meteo.com/v1/forecast", conf.ForecastBaseURL)
	s.Equal("https://nominatim.openstreetmap.org/reverse", conf.GeocodeBaseURL)
	s.Equal(time.Duration(0), conf.UpstreamTimeout)
	s.Equal(10*time.Minute, conf.SessionTTL)
	s.Equal(1500*time.Millisecond, conf.ScanDelay)
	s.Equal(30*time.Second, conf.HTTPTimeoutDuration())
	s.False(conf.PersistenceEnabled())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("SESSION_TTL", "2m")
	s.T().Setenv("UPSTREAM_TIMEOUT", "5s")
	s.T().Setenv("DATABASE_HOST", "db")
	s.T().Setenv("HTTP_TIMEOUT", "7")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal(2*time.Minute, conf.SessionTTL)
	s.Equal(5*time.Second, conf.UpstreamTimeout)
	s.Equal(7*time.Second, conf.HTTPTimeoutDuration())
	s.True(conf.PersistenceEnabled())
}

func (s *ConfigTestSuite) TestRejectsNonPositiveCleanupInterval() {
	s.T().Setenv("SESSION_CLEANUP_INTERVAL", "0s")

	_, err := config.LoadConfig()
	s.Error(err)
	s.Contains(err.Error(), "SESSION_CLEANUP_INTERVAL")
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
