package llm

import (
	"context"
	"errors"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	DTO_llm "ask_relay/internal/DTO/llm"
	config_llm "ask_relay/internal/config/llm"
)

const genkitProvider = "github"

type genkitCompleter struct {
	g         *genkit.Genkit
	modelName string
}

// NewGenkit registers the upstream model with a genkit compat_oai plugin.
func NewGenkit(ctx context.Context, baseURL, apiKey string) (Completer, error) {
	gh := &compat_oai.OpenAICompatible{
		Provider: genkitProvider,
		Opts: []option.RequestOption{
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithMaxRetries(0),
		},
	}

	g := genkit.Init(ctx, genkit.WithPlugins(gh))

	gh.DefineModel(gh.Provider, config_llm.Model, ai.ModelOptions{
		Supports: &compat_oai.BasicText,
		Label:    "GitHub Models " + config_llm.Model,
	})

	name := genkitModelName(config_llm.Model)
	if !gh.IsDefinedModel(g, name) {
		return nil, errors.New("upstream model is not registered in genkit registry")
	}

	return &genkitCompleter{g: g, modelName: name}, nil
}

func (c *genkitCompleter) Complete(ctx context.Context, prompt DTO_llm.Prompt) (string, error) {
	resp, err := genkit.Generate(
		ctx,
		c.g,
		ai.WithModelName(c.modelName),
		ai.WithMessages(
			ai.NewSystemTextMessage(prompt.System),
			ai.NewUserTextMessage(prompt.User),
		),
		ai.WithConfig(&openai.ChatCompletionNewParams{
			MaxTokens:   openai.Int(config_llm.MaxTokens),
			Temperature: openai.Float(config_llm.Temperature),
		}),
	)
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Message == nil {
		return "", errNoChoices
	}
	return resp.Text(), nil
}

// genkitModelName is the registry key: <provider>/<upstream model id>.
func genkitModelName(model string) string {
	return genkitProvider + "/" + model
}
