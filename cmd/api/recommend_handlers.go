package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"stratify/internal/advisor"
	"stratify/internal/recommendation"
	"stratify/internal/session"
)

// POST /api/recommendation
func (s *apiServer) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rec, err := s.sess.RequestRecommendation(r.Context())
	if err != nil {
		writeError(w, recommendationStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func recommendationStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, session.ErrStale):
		return http.StatusConflict
	case advisor.IsInvalidResponse(err):
		return http.StatusUnprocessableEntity
	case advisor.IsUnavailable(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// POST /api/products/{id}/description
func (s *apiServer) handleDescription(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	p, err := s.sess.GenerateDescription(r.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, session.ErrProductNotFound):
			status = http.StatusNotFound
		case advisor.IsInvalidResponse(err):
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PUT  /api/recommendation/layers/{i}      — wholesale layer replacement
// POST /api/recommendation/layers/{i}/swap — promote an alternative
func (s *apiServer) handleLayer(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/recommendation/layers/")
	idxStr, action, _ := strings.Cut(rest, "/")
	index, err := strconv.Atoi(strings.TrimSpace(idxStr))
	if err != nil {
		http.Error(w, "layer index is required", http.StatusBadRequest)
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var layer recommendation.SystemLayer
		if err := json.NewDecoder(r.Body).Decode(&layer); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		s.respondEdit(w, s.sess.EditLayer(index, layer))
	case "swap":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var alt recommendation.RecommendedProduct
		if err := json.NewDecoder(r.Body).Decode(&alt); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		s.respondEdit(w, s.sess.SwapProduct(index, alt))
	default:
		http.NotFound(w, r)
	}
}

func (s *apiServer) respondEdit(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, s.sess.Snapshot().Recommendation)
	case errors.Is(err, session.ErrNoRecommendation):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, recommendation.ErrLayerIndex):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusBadRequest, err)
	}
}
