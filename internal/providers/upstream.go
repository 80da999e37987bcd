package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const maxResponseBytes = 1 << 20

var errCircuitOpen = errors.New("circuit breaker open")

// upstream performs GET requests against one public API behind its own
// circuit breaker. Requests are never retried.
type upstream struct {
	name      string
	baseURL   string
	userAgent string
	client    *http.Client
	circuit   *gobreaker.CircuitBreaker
}

func newUpstream(name, baseURL, userAgent string, client *http.Client) *upstream {
	if client == nil {
		client = &http.Client{}
	}

	return &upstream{
		name:      name,
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    client,
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: countsAsHealthy,
		}),
	}
}

// errCallerDone marks requests abandoned because the caller's ctx ended.
// They say nothing about the upstream and never count against the breaker.
var errCallerDone = errors.New("caller gave up")

func countsAsHealthy(err error) bool {
	return err == nil || errors.Is(err, errCallerDone)
}

// get returns the body of a successful response.
func (u *upstream) get(ctx context.Context, params url.Values) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint := u.baseURL + "?" + params.Encode()

	result, err := u.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if u.userAgent != "" {
			req.Header.Set("User-Agent", u.userAgent)
		}

		resp, err := u.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%s request abandoned: %w: %w", u.name, errCallerDone, err)
			}
			return nil, fmt.Errorf("%s request failed: %w", u.name, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s returned status code: %d", u.name, resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%s response abandoned: %w: %w", u.name, errCallerDone, err)
			}
			return nil, fmt.Errorf("%s response read failed: %w", u.name, err)
		}

		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w: %v", u.name, errCircuitOpen, err)
		}
		return nil, err
	}

	return result.([]byte), nil
}
