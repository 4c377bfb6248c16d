package llm

// Prompt is the system+user message pair sent upstream.
type Prompt struct {
	System string
	User   string
}
