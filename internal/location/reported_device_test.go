package location_test

import (
	"context"
	"net/url"
	"testing"
	"ulascansenturk/home-weather-service/internal/location"

	"github.com/stretchr/testify/suite"
)

type ReportedDeviceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ReportedDeviceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ReportedDeviceTestSuite) TestParseReportWithCoordinates() {
	report, err := location.ParseReport(url.Values{
		"permission": {"Granted"},
		"lat":        {"41.0082"},
		"lon":        {"28.9784"},
	})
	s.Require().NoError(err)

	device := location.NewReportedDevice(report)

	status, err := device.RequestForegroundPermission(s.ctx)
	s.NoError(err)
	s.Equal(location.PermissionGranted, status)

	coords, err := device.CurrentPosition(s.ctx)
	s.NoError(err)
	s.Equal(41.0082, coords.Latitude)
	s.Equal(28.9784, coords.Longitude)
}

func (s *ReportedDeviceTestSuite) TestParseReportRejectsInvalidInput() {
	cases := map[string]url.Values{
		"latitude out of range":  {"permission": {"granted"}, "lat": {"91"}, "lon": {"10"}},
		"longitude out of range": {"permission": {"granted"}, "lat": {"10"}, "lon": {"-181"}},
		"not a number":           {"permission": {"granted"}, "lat": {"north"}, "lon": {"10"}},
		"missing longitude":      {"permission": {"granted"}, "lat": {"10"}},
		"unknown permission":     {"permission": {"maybe"}},
	}

	for name, values := range cases {
		s.Run(name, func() {
			_, err := location.ParseReport(values)
			s.Error(err)
		})
	}
}

func (s *ReportedDeviceTestSuite) TestDeniedPermission() {
	report, err := location.ParseReport(url.Values{"permission": {"denied"}})
	s.Require().NoError(err)

	status, err := location.NewReportedDevice(report).RequestForegroundPermission(s.ctx)
	s.NoError(err)
	s.Equal(location.PermissionDenied, status)
}

func (s *ReportedDeviceTestSuite) TestPermissionCheckError() {
	for _, permission := range []string{"", "error"} {
		report, err := location.ParseReport(url.Values{"permission": {permission}})
		s.Require().NoError(err)

		_, err = location.NewReportedDevice(report).RequestForegroundPermission(s.ctx)
		s.ErrorIs(err, location.ErrPermissionCheck)
	}
}

func (s *ReportedDeviceTestSuite) TestPositionUnavailable() {
	report, err := location.ParseReport(url.Values{"permission": {"granted"}})
	s.Require().NoError(err)

	_, err = location.NewReportedDevice(report).CurrentPosition(s.ctx)
	s.ErrorIs(err, location.ErrPositionUnavailable)

	report, err = location.ParseReport(url.Values{
		"permission":     {"granted"},
		"lat":            {"10"},
		"lon":            {"10"},
		"position_error": {"gps timeout"},
	})
	s.Require().NoError(err)

	_, err = location.NewReportedDevice(report).CurrentPosition(s.ctx)
	s.ErrorIs(err, location.ErrPositionUnavailable)
	s.Contains(err.Error(), "gps timeout")
}

func (s *ReportedDeviceTestSuite) TestCoordinatesKey() {
	coords := location.Coordinates{Latitude: 52.52, Longitude: 13.405}
	s.Equal("52.520000,13.405000", coords.Key())
}

func TestReportedDeviceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportedDeviceTestSuite))
}
