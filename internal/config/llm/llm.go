package llm

// Upstream endpoint and generation settings. Fixed for the whole process.
const (
	BaseURL = "https://models.github.ai/inference/"
	Model   = "openai/gpt-4o"

	MaxTokens   int64   = 2000
	Temperature float64 = 0.1
)

// Prompt texts.
const (
	SystemPrompt = "You are a helpful assistant."
	UserPrefix   = "Answer like you're a helpful assistant. "
)
