// Package suggest proposes PI phonetic forms for dictionary entries using
// the OpenAI API. Calls run behind a circuit breaker so a failing network
// degrades the entry editor to "no suggestion" instead of blocking it on
// every prompt.
package suggest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Suggester fetches PI form suggestions for words.
type Suggester struct {
	apiKey  string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// New creates a Suggester. An empty apiKey yields a disabled Suggester
// whose Suggest always errors; callers should check Enabled first.
func New(apiKey string) *Suggester {
	return &Suggester{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openai-suggest",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Enabled reports whether an API key is configured.
func (s *Suggester) Enabled() bool {
	return s != nil && s.apiKey != ""
}

// Suggest returns a proposed PI form for word under the given variation.
func (s *Suggester) Suggest(word, variation string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		req := openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleSystem,
					Content: "You are a phonemic transcription assistant for the PI notation, " +
						"which marks English words with diacritics to show their pronunciation.",
				},
				{
					Role: openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(
						"Propose the PI-format spelling of the English word '%s' for the %s variation. "+
							"Respond with only the PI spelling, nothing else.", word, variation),
				},
			},
			Temperature: 0.3,
			MaxTokens:   60,
		}

		resp, err := s.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, fmt.Errorf("no suggestion returned")
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
