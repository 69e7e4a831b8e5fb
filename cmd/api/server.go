package main

import (
	"net/http"

	"stratify/internal/session"
)

// apiServer wires the session surface onto plain HTTP handlers.
type apiServer struct {
	sess *session.Session
}

func newAPIServer(sess *session.Session) *apiServer {
	return &apiServer{sess: sess}
}

func buildMux(s *apiServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/session", s.handleSession)
	mux.HandleFunc("/api/project", s.handleProject)
	mux.HandleFunc("/api/layer-types", s.handleLayerTypes)
	mux.HandleFunc("/api/products", s.handleProducts)
	mux.HandleFunc("/api/products/", s.handleProductByID)
	mux.HandleFunc("/api/recommendation", s.handleRecommendation)
	mux.HandleFunc("/api/recommendation/layers/", s.handleLayer)
	mux.HandleFunc("/api/reset", s.handleReset)
	mux.HandleFunc("/api/comparison", s.handleComparison)
	mux.HandleFunc("/api/watch", s.handleWatchWS)
	return mux
}
