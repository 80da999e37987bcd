package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/home-weather-service/internal/db/feedback"
)

var (
	ErrEmptyFeedback           = errors.New("please type something before submitting")
	ErrFeedbackStorageDisabled = errors.New("feedback storage is not configured")
)

type FeedbackService interface {
	Submit(ctx context.Context, message string) (feedback.Feedback, error)
	Recent(ctx context.Context, limit int) ([]feedback.Feedback, error)
}

type feedbackService struct {
	repo feedback.Repository
}

// NewFeedbackService accepts a nil repository; submissions are then only logged.
func NewFeedbackService(repo feedback.Repository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Submit(ctx context.Context, message string) (feedback.Feedback, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return feedback.Feedback{}, ErrEmptyFeedback
	}

	item := feedback.Feedback{Message: message}
	log.Info().Int("length", len(message)).Msg("feedback submitted")

	if s.repo == nil {
		return item, nil
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return feedback.Feedback{}, err
	}

	return item, nil
}

func (s *feedbackService) Recent(ctx context.Context, limit int) ([]feedback.Feedback, error) {
	if s.repo == nil {
		return nil, ErrFeedbackStorageDisabled
	}
	return s.repo.ListRecent(ctx, limit)
}
