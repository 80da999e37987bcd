package location

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Report is what a device sends along with a home screen activation.
type Report struct {
	Permission    string   `validate:"omitempty,oneof=granted denied error"`
	Latitude      *float64 `validate:"omitempty,latitude"`
	Longitude     *float64 `validate:"omitempty,longitude"`
	PositionError string
}

// ParseReport reads a device report from query parameters
// (permission, lat, lon, position_error).
func ParseReport(values url.Values) (Report, error) {
	report := Report{
		Permission:    strings.ToLower(strings.TrimSpace(values.Get("permission"))),
		PositionError: values.Get("position_error"),
	}

	var err error
	if report.Latitude, err = parseCoordinate(values, "lat"); err != nil {
		return Report{}, err
	}
	if report.Longitude, err = parseCoordinate(values, "lon"); err != nil {
		return Report{}, err
	}

	if (report.Latitude == nil) != (report.Longitude == nil) {
		return Report{}, fmt.Errorf("parameters 'lat' and 'lon' must be provided together")
	}

	if err := validate.Struct(report); err != nil {
		return Report{}, fmt.Errorf("invalid device report: %w", err)
	}

	return report, nil
}

func parseCoordinate(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter '%s' must be a number: %w", key, err)
	}

	return &v, nil
}

// ReportedDevice answers permission and position queries from a Report.
type ReportedDevice struct {
	report Report
}

func NewReportedDevice(report Report) *ReportedDevice {
	return &ReportedDevice{report: report}
}

func (d *ReportedDevice) RequestForegroundPermission(ctx context.Context) (PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch PermissionStatus(d.report.Permission) {
	case PermissionGranted:
		return PermissionGranted, nil
	case PermissionDenied:
		return PermissionDenied, nil
	case "":
		return "", fmt.Errorf("%w: device did not report a permission decision", ErrPermissionCheck)
	default:
		return "", fmt.Errorf("%w: device reported %q", ErrPermissionCheck, d.report.Permission)
	}
}

func (d *ReportedDevice) CurrentPosition(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}

	if d.report.PositionError != "" {
		return Coordinates{}, fmt.Errorf("%w: %s", ErrPositionUnavailable, d.report.PositionError)
	}

	if d.report.Latitude == nil || d.report.Longitude == nil {
		return Coordinates{}, ErrPositionUnavailable
	}

	return Coordinates{Latitude: *d.report.Latitude, Longitude: *d.report.Longitude}, nil
}
