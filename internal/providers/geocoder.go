package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/singleflight"
	"ulascansenturk/home-weather-service/internal/location"
)

// ErrPlaceUnavailable means the reverse lookup returned no city, town or village.
var ErrPlaceUnavailable = errors.New("place name unavailable")

type Address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
}

// PlaceName picks city, then town, then village.
func (a Address) PlaceName() (string, bool) {
	for _, name := range []string{a.City, a.Town, a.Village} {
		if name != "" {
			return name, true
		}
	}
	return "", false
}

type Geocoder interface {
	ReversePlaceName(ctx context.Context, coords location.Coordinates) (string, error)
}

type nominatimGeocoder struct {
	upstream *upstream
	inflight singleflight.Group
}

func NewNominatimGeocoder(baseURL, userAgent string, client *http.Client) Geocoder {
	return &nominatimGeocoder{
		upstream: newUpstream("geocode", baseURL, userAgent, client),
	}
}

type reverseResponse struct {
	Address *Address `json:"address"`
}

// ReversePlaceName shares one upstream lookup between concurrent callers
// asking for the same coordinates. The shared lookup outlives any single
// caller; each caller stops waiting when its own ctx ends.
func (g *nominatimGeocoder) ReversePlaceName(ctx context.Context, coords location.Coordinates) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	shared := context.WithoutCancel(ctx)
	ch := g.inflight.DoChan(coords.Key(), func() (interface{}, error) {
		return g.lookup(shared, coords)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *nominatimGeocoder) lookup(ctx context.Context, coords location.Coordinates) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Set("format", "json")

	body, err := g.upstream.get(ctx, params)
	if err != nil {
		return "", err
	}

	var apiResp reverseResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("geocode returned malformed JSON: %w", err)
	}

	if apiResp.Address == nil {
		return "", ErrPlaceUnavailable
	}

	name, ok := apiResp.Address.PlaceName()
	if !ok {
		return "", ErrPlaceUnavailable
	}

	return name, nil
}
