package llmclient

import (
	"context"
	"log"
)

// WithLogging logs request sizes and errors. Pass nil to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateJSON(ctx context.Context, prompt string, input any) (string, error) {
	l.log.Printf("LLM json request (%s): %d prompt bytes", l.next.Name(), len(prompt))
	out, err := l.next.GenerateJSON(ctx, prompt, input)
	if err != nil {
		l.log.Printf("LLM json error (%s): %v", l.next.Name(), err)
	}
	return out, err
}

func (l *logging) GenerateText(ctx context.Context, prompt string, input any) (string, error) {
	l.log.Printf("LLM text request (%s): %d prompt bytes", l.next.Name(), len(prompt))
	out, err := l.next.GenerateText(ctx, prompt, input)
	if err != nil {
		l.log.Printf("LLM text error (%s): %v", l.next.Name(), err)
	}
	return out, err
}
