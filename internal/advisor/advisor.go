// Package advisor orchestrates recommendation requests: it assembles the
// outbound prompt from project and catalogue, invokes the reasoning service
// exactly once per call, and runs the raw reply through the recommendation
// validator. It owns the error taxonomy callers branch on.
package advisor

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"stratify/internal/catalog"
	"stratify/internal/llmclient"
	"stratify/internal/recommendation"
)

const descriptionCacheSize = 256

// Advisor is safe for concurrent use; the LLM call is its sole suspension
// point and no advisor state is mutated per request besides the cache.
type Advisor struct {
	llm       llmclient.Client
	descCache *lru.Cache[string, string]
}

func New(client llmclient.Client) (*Advisor, error) {
	cache, err := lru.New[string, string](descriptionCacheSize)
	if err != nil {
		return nil, err
	}
	return &Advisor{llm: client, descCache: cache}, nil
}

// requestPayload is the serialized dump appended to the instruction block.
// Candidate products carry no local ids on the wire.
type requestPayload struct {
	catalog.ProjectDetails
	CandidateProducts []catalog.CandidateProduct `json:"candidate_products"`
}

// GenerateRecommendation performs one generation attempt. Transport
// failures surface as ServiceError{Unavailable}; replies that fail parsing
// or shape checks as ServiceError{InvalidResponse}. No internal retry.
func (a *Advisor) GenerateRecommendation(ctx context.Context, project catalog.ProjectDetails, products []catalog.CandidateProduct) (*recommendation.SystemRecommendation, error) {
	stripped := make([]catalog.CandidateProduct, 0, len(products))
	for _, p := range products {
		stripped = append(stripped, p.StripID())
	}
	payload := requestPayload{ProjectDetails: project, CandidateProducts: stripped}

	raw, err := a.llm.GenerateJSON(ctx, recommendationPrompt(), payload)
	if err != nil {
		return nil, &ServiceError{Kind: KindUnavailable, Err: err}
	}

	rec, err := recommendation.Parse(raw)
	if err != nil {
		return nil, &ServiceError{Kind: KindInvalidResponse, Err: err}
	}
	return rec, nil
}

// GenerateDescription backfills a product's descriptive text. The reply is
// prose, not schema-bound: it is trimmed and used verbatim. Results are
// cached per product identity so re-requesting a description for an
// unchanged product costs nothing.
func (a *Advisor) GenerateDescription(ctx context.Context, product catalog.CandidateProduct) (string, error) {
	key := descCacheKey(product)
	if cached, ok := a.descCache.Get(key); ok {
		return cached, nil
	}

	text, err := a.llm.GenerateText(ctx, descriptionPrompt(), product.StripID())
	if err != nil {
		return "", &ServiceError{Kind: KindUnavailable, Err: err}
	}
	desc := strings.TrimSpace(text)
	if desc == "" {
		return "", &ServiceError{Kind: KindInvalidResponse, Err: fmt.Errorf("empty description")}
	}
	a.descCache.Add(key, desc)
	return desc, nil
}

func descCacheKey(p catalog.CandidateProduct) string {
	return p.Manufacturer + "|" + p.ProductName + "|" + p.ProductCode
}
