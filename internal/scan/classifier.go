package scan

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrNoImage = errors.New("no image selected")

// Share is one slice of the diagnosis breakdown, in percent.
type Share struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

type Diagnosis struct {
	Label     string  `json:"label"`
	Breakdown []Share `json:"breakdown"`
}

type Classifier interface {
	Classify(ctx context.Context, image string) (Diagnosis, error)
}

// StaticClassifier stands in for the leaf disease model: after a fixed delay
// it always reports the same diagnosis.
type StaticClassifier struct {
	delay time.Duration
}

func NewStaticClassifier(delay time.Duration) *StaticClassifier {
	return &StaticClassifier{delay: delay}
}

func (c *StaticClassifier) Classify(ctx context.Context, image string) (Diagnosis, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return Diagnosis{}, ErrNoImage
	}

	log.Debug().Str("image", image).Msg("image sent to model")

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Diagnosis{}, ctx.Err()
	case <-timer.C:
	}

	return Diagnosis{
		Label: "Apple Scab",
		Breakdown: []Share{
			{Label: "Healthy", Percent: 75},
			{Label: "Apple Scab", Percent: 25},
		},
	}, nil
}
