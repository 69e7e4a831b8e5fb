package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultModel = "gemini-2.5-flash"

type Config struct {
	Port         string
	GeminiAPIKey string
	Model        string
	FakeLLM      bool
}

// Load reads .env (when present) and the process environment. A missing
// GEMINI_API_KEY is a startup configuration error unless the fake client is
// selected; it is never deferred to request time.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = ":8080"
	} else if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = defaultModel
	}

	fake := false
	if raw := strings.TrimSpace(os.Getenv("STRATIFY_FAKE_LLM")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err == nil {
			fake = v
		}
	}

	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key == "" && !fake {
		return nil, errors.New("config: GEMINI_API_KEY is not set (set STRATIFY_FAKE_LLM=1 to run offline)")
	}

	return &Config{
		Port:         port,
		GeminiAPIKey: key,
		Model:        model,
		FakeLLM:      fake,
	}, nil
}
