package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/home-weather-service/internal/scan"
)

type ScanHandler struct {
	classifier scan.Classifier
	timeout    time.Duration
}

func NewScanHandler(classifier scan.Classifier, timeout time.Duration) *ScanHandler {
	return &ScanHandler{
		classifier: classifier,
		timeout:    timeout,
	}
}

func (h *ScanHandler) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ScanRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "field 'image' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	diagnosis, err := h.classifier.Classify(ctx, req.Image)
	if err != nil {
		if errors.Is(err, scan.ErrNoImage) {
			respondWithError(w, http.StatusBadRequest, "field 'image' is required")
			return
		}
		log.Error().Err(err).Msg("scan failed")
		respondWithError(w, http.StatusInternalServerError, "scan failed: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ScanResponse{
		Label:     diagnosis.Label,
		Breakdown: diagnosis.Breakdown,
	})
}
