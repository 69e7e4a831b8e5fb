package llmclient

import (
	"context"

	genai "google.golang.org/genai"

	"stratify/internal/util/jsonutil"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient builds a Gemini-backed client. The API key is injected
// explicitly; an empty key is a configuration error the caller reports at
// startup rather than an ambient-environment fault discovered mid-request.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// GenerateJSON concatenates prompt and input and asks for application/json.
// The returned text is still untrusted; the recommendation validator owns
// fence stripping and shape checks.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, input any) (string, error) {
	return g.generate(ctx, prompt, input, &genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
}

// GenerateText is GenerateJSON's prose sibling: no MIME constraint, the raw
// candidate text comes back as-is.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string, input any) (string, error) {
	return g.generate(ctx, prompt, input, nil)
}

func (g *GeminiClient) generate(ctx context.Context, prompt string, input any, cfg *genai.GenerateContentConfig) (string, error) {
	full := prompt
	if input != nil {
		in, err := jsonutil.MarshalIndentNoEscape(input)
		if err != nil {
			return "", err
		}
		full = prompt + "\n\nINPUT FIELDS:\n" + string(in)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		cfg,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
