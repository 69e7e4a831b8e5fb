package main

import (
	"context"
	"log"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"stratify/internal/advisor"
	"stratify/internal/config"
	"stratify/internal/llmclient"
	"stratify/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	ctx := context.Background()
	var client llmclient.Client
	if cfg.FakeLLM {
		client = llmclient.NewFakeClient(llmclient.FakeResponse{Text: offlineRecommendationJSON})
		log.Printf("LLM: offline fake client")
	} else {
		client, err = llmclient.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			log.Fatalf("startup: gemini client: %v", err)
		}
	}
	client = llmclient.Wrap(client, llmclient.WithLogging(nil))
	defer client.Close()

	adv, err := advisor.New(client)
	if err != nil {
		log.Fatalf("startup: advisor: %v", err)
	}

	s := newAPIServer(session.New(adv))
	h := withCORS(buildMux(s))

	log.Printf("Starting API server on %s (model %s)", cfg.Port, client.Name())
	log.Fatal(http.ListenAndServe(cfg.Port, h2c.NewHandler(h, &http2.Server{})))
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
