package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

var (
	ErrPositionUnavailable = errors.New("current position unavailable")
	ErrPermissionCheck     = errors.New("permission check failed")
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key identifies a coordinate pair at the precision the upstream APIs accept.
func (c Coordinates) Key() string {
	return strconv.FormatFloat(c.Latitude, 'f', 6, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', 6, 64)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%f, %f)", c.Latitude, c.Longitude)
}

// Provider is the device side of a home screen activation: it answers the
// foreground permission prompt and reports a single-shot position.
type Provider interface {
	RequestForegroundPermission(ctx context.Context) (PermissionStatus, error)
	CurrentPosition(ctx context.Context) (Coordinates, error)
}
