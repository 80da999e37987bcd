package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"ulascansenturk/home-weather-service/internal/service"
)

var validate = validator.New()

const (
	emptyFeedbackMessage = "Please type something before submitting."
	defaultFeedbackLimit = 20
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
	timeout         time.Duration
}

func NewFeedbackHandler(feedbackService service.FeedbackService, timeout time.Duration) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		timeout:         timeout,
	}
}

// ServeHTTP dispatches /feedback: POST submits, GET lists recent entries.
func (h *FeedbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Submit(w, r)
	case http.MethodGet:
		h.List(w, r)
	default:
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req FeedbackRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, emptyFeedbackMessage)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	item, err := h.feedbackService.Submit(ctx, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFeedback) {
			respondWithError(w, http.StatusBadRequest, emptyFeedbackMessage)
			return
		}
		log.Error().Err(err).Msg("failed to store feedback")
		respondWithError(w, http.StatusInternalServerError, "failed to store feedback: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, newFeedbackResponse(item))
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit, err := parseLimit(r, defaultFeedbackLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, err := h.feedbackService.Recent(ctx, limit)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackStorageDisabled) {
			respondWithError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.Error().Err(err).Msg("failed to load feedback")
		respondWithError(w, http.StatusInternalServerError, "failed to load feedback: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, newFeedbackListResponse(items))
}
