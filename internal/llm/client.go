package llm

import (
	"context"
	"errors"
)

// Message is a single chat turn sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result carries the completion text plus whatever usage accounting the
// provider returned.
type Result struct {
	Content          string
	Model            string
	PromptTokens     *int
	CompletionTokens *int
}

// Client abstracts a chat-completion provider. jsonMode asks the
// provider to constrain output to a single JSON object.
type Client interface {
	Complete(ctx context.Context, messages []Message, jsonMode bool, temperature float32) (*Result, error)
}

// ErrNotConfigured is returned by the disabled client when no provider
// credentials were supplied at startup.
var ErrNotConfigured = errors.New("llm: provider not configured")

type disabledClient struct{}

func (disabledClient) Complete(context.Context, []Message, bool, float32) (*Result, error) {
	return nil, ErrNotConfigured
}

// Disabled returns a client that fails every completion. It keeps the
// rest of the API usable when no LLM credentials are configured.
func Disabled() Client {
	return disabledClient{}
}
