package handlers

import (
	"time"

	"ulascansenturk/home-weather-service/internal/db/feedback"
	"ulascansenturk/home-weather-service/internal/db/weatherquery"
	"ulascansenturk/home-weather-service/internal/scan"
	"ulascansenturk/home-weather-service/internal/service"
)

type DisplayState struct {
	Place              string `json:"place"`
	TemperatureCelsius string `json:"temperatureCelsius"`
	ConditionLabel     string `json:"conditionLabel"`
	DisplayRange       string `json:"displayRange"`
}

type HomeWeatherResponse struct {
	SessionID string       `json:"id,omitempty"`
	State     DisplayState `json:"state"`
	Version   int          `json:"version"`
	Complete  bool         `json:"complete"`
}

func newHomeWeatherResponse(view service.SessionView, withID bool) HomeWeatherResponse {
	resp := HomeWeatherResponse{
		State: DisplayState{
			Place:              view.State.Place,
			TemperatureCelsius: view.State.Temperature,
			ConditionLabel:     view.State.Condition,
			DisplayRange:       view.State.Range,
		},
		Version:  view.Version,
		Complete: view.Complete,
	}
	if withID {
		resp.SessionID = view.ID
	}
	return resp
}

type HistoryEntry struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Place       string    `json:"place,omitempty"`
	Temperature float64   `json:"temperature"`
	Condition   string    `json:"condition"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}

func newHistoryResponse(queries []weatherquery.WeatherQuery) HistoryResponse {
	entries := make([]HistoryEntry, 0, len(queries))
	for _, q := range queries {
		entries = append(entries, HistoryEntry{
			Latitude:    q.Latitude,
			Longitude:   q.Longitude,
			Place:       q.Place,
			Temperature: q.Temperature,
			Condition:   q.Condition,
			CreatedAt:   q.CreatedAt,
		})
	}
	return HistoryResponse{Entries: entries}
}

type FeedbackRequest struct {
	Message string `json:"message" validate:"required"`
}

type FeedbackResponse struct {
	ID        uint      `json:"id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func newFeedbackResponse(item feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        item.ID,
		Message:   item.Message,
		CreatedAt: item.CreatedAt,
	}
}

type FeedbackListResponse struct {
	Entries []FeedbackResponse `json:"entries"`
}

func newFeedbackListResponse(items []feedback.Feedback) FeedbackListResponse {
	entries := make([]FeedbackResponse, 0, len(items))
	for _, item := range items {
		entries = append(entries, newFeedbackResponse(item))
	}
	return FeedbackListResponse{Entries: entries}
}

type ScanRequest struct {
	Image string `json:"image" validate:"required"`
}

type ScanResponse struct {
	Label     string       `json:"label"`
	Breakdown []scan.Share `json:"breakdown"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
