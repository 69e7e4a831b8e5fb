package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"stratify/internal/catalog"
	"stratify/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// GET /api/session
func (s *apiServer) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.sess.Snapshot())
}

// PUT /api/project
func (s *apiServer) handleProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var p catalog.ProjectDetails
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := s.sess.SetProject(p); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, session.ErrBusy) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// POST /api/layer-types
func (s *apiServer) handleLayerTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	s.sess.AddLayerType(strings.TrimSpace(in.Name))
	writeJSON(w, http.StatusOK, map[string]any{"layer_types": s.sess.Snapshot().LayerTypes})
}

// POST /api/products
func (s *apiServer) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.sess.Products())
	case http.MethodPost:
		var p catalog.CandidateProduct
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, s.sess.AddProduct(p))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// /api/products/{id} and /api/products/{id}/description
func (s *apiServer) handleProductByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, action, _ := strings.Cut(rest, "/")
	id = strings.TrimSpace(id)
	if id == "" {
		http.Error(w, "product id is required", http.StatusBadRequest)
		return
	}

	if action == "description" {
		s.handleDescription(w, r, id)
		return
	}
	if action != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.sess.Product(id)
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPut:
		var p catalog.CandidateProduct
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		p.ID = id
		if err := s.sess.UpdateProduct(p); err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if err := s.sess.RemoveProduct(id); err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// GET /api/comparison
func (s *apiServer) handleComparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.sess.ComparisonRows())
}

// POST /api/reset
func (s *apiServer) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.sess.Reset()
	writeJSON(w, http.StatusOK, s.sess.Snapshot())
}
