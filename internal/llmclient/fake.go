package llmclient

import (
	"context"
	"sync"
)

// FakeClient returns scripted responses for offline use and tests. Each
// call consumes the next queued response; an exhausted queue replays the
// last entry so long-lived offline sessions keep working.
type FakeClient struct {
	mu        sync.Mutex
	responses []FakeResponse
	calls     []FakeCall
}

// FakeResponse is one scripted reply.
type FakeResponse struct {
	Text string
	Err  error
}

// FakeCall records what the client was asked, for assertions.
type FakeCall struct {
	Kind   string // "json" or "text"
	Prompt string
	Input  any
}

func NewFakeClient(responses ...FakeResponse) *FakeClient {
	return &FakeClient{responses: responses}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

// Calls returns a copy of everything the fake has been asked so far.
func (f *FakeClient) Calls() []FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeCall(nil), f.calls...)
}

func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, input any) (string, error) {
	return f.next(ctx, "json", prompt, input)
}

func (f *FakeClient) GenerateText(ctx context.Context, prompt string, input any) (string, error) {
	return f.next(ctx, "text", prompt, input)
}

func (f *FakeClient) next(ctx context.Context, kind, prompt string, input any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, FakeCall{Kind: kind, Prompt: prompt, Input: input})
	if len(f.responses) == 0 {
		return "", ErrEmptyResponse
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp.Text, resp.Err
}
