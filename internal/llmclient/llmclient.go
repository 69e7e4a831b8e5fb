// Package llmclient wraps the reasoning service behind a narrow interface.
// Clients focus on the API call itself; cross-cutting concerns (logging,
// instrumentation) are layered on via Middleware decorators.
package llmclient

import (
	"context"
	"errors"
)

// ErrEmptyResponse means the service answered but produced no usable text.
var ErrEmptyResponse = errors.New("llmclient: empty response from model")

// Client is a text-completion service. GenerateJSON asks the model for an
// application/json payload (still untrusted text: callers validate it);
// GenerateText returns free prose. Both make exactly one call per
// invocation — retry policy belongs to the caller, not here.
type Client interface {
	Name() string
	GenerateJSON(ctx context.Context, prompt string, input any) (string, error)
	GenerateText(ctx context.Context, prompt string, input any) (string, error)
	Close() error
}

// Middleware decorates a Client.
type Middleware func(Client) Client

// Wrap applies middlewares left to right, so the first one listed sees the
// call first.
func Wrap(c Client, mws ...Middleware) Client {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
