package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/home-weather-service/internal/location"
	"ulascansenturk/home-weather-service/internal/service"
)

const sessionsPath = "/home/sessions"

type HomeHandler struct {
	weatherService service.WeatherService
	sessions       service.SessionManager
	timeout        time.Duration
	historyLimit   int
}

func NewHomeHandler(
	weatherService service.WeatherService,
	sessions service.SessionManager,
	timeout time.Duration,
	historyLimit int,
) *HomeHandler {
	return &HomeHandler{
		weatherService: weatherService,
		sessions:       sessions,
		timeout:        timeout,
		historyLimit:   historyLimit,
	}
}

// GetWeather resolves a whole activation within the request and returns the
// display state it reached.
func (h *HomeHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report, err := location.ParseReport(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.weatherService.Resolve(ctx, location.NewReportedDevice(report))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve home weather")
		respondWithError(w, http.StatusInternalServerError, "failed to resolve home weather: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, newHomeWeatherResponse(view, false))
}

// StartSession begins a background activation the client can poll.
func (h *HomeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report, err := location.ParseReport(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := h.sessions.Start(location.NewReportedDevice(report))

	w.Header().Set("Location", sessionsPath+"/"+view.ID)
	respondWithJSON(w, http.StatusAccepted, newHomeWeatherResponse(view, true))
}

// Session serves GET and DELETE on /home/sessions/{id}.
func (h *HomeHandler) Session(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, sessionsPath+"/")
	if id == "" || strings.Contains(id, "/") {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		view, err := h.sessions.Get(id)
		if err != nil {
			h.respondWithSessionError(w, id, err)
			return
		}
		respondWithJSON(w, http.StatusOK, newHomeWeatherResponse(view, true))
	case http.MethodDelete:
		if err := h.sessions.Dispose(id); err != nil {
			h.respondWithSessionError(w, id, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *HomeHandler) respondWithSessionError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		respondWithError(w, http.StatusNotFound, "session "+id+" not found")
		return
	}
	log.Error().Err(err).Str("session", id).Msg("session lookup failed")
	respondWithError(w, http.StatusInternalServerError, err.Error())
}

func (h *HomeHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit, err := parseLimit(r, h.historyLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	queries, err := h.weatherService.History(ctx, limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			respondWithError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.Error().Err(err).Msg("failed to load weather history")
		respondWithError(w, http.StatusInternalServerError, "failed to load weather history: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, newHistoryResponse(queries))
}
