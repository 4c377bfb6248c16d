package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	DTO_llm "ask_relay/internal/DTO/llm"
	config_llm "ask_relay/internal/config/llm"
)

var errNoChoices = errors.New("upstream returned no choices")

type openAICompleter struct {
	client openai.Client
}

// NewOpenAI talks to an OpenAI-compatible chat completions endpoint directly.
// Retries are disabled; the request context is the only deadline.
func NewOpenAI(baseURL, apiKey string, opts ...option.RequestOption) Completer {
	base := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	return &openAICompleter{
		client: openai.NewClient(append(base, opts...)...),
	}
}

func (c *openAICompleter) Complete(ctx context.Context, prompt DTO_llm.Prompt) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, chatParams(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func chatParams(prompt DTO_llm.Prompt) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: config_llm.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		MaxTokens:   openai.Int(config_llm.MaxTokens),
		Temperature: openai.Float(config_llm.Temperature),
	}
}
