package ask

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	DTO_llm "ask_relay/internal/DTO/llm"
	config_llm "ask_relay/internal/config/llm"
	service_llm "ask_relay/internal/service/llm"
)

type ask struct {
	completer service_llm.Completer
}

type Ask interface {
	Ask(ctx context.Context, question any) DTO_llm.Outcome
}

func NewAsk(completer service_llm.Completer) Ask {
	return &ask{completer: completer}
}

// Ask makes exactly one upstream call. Every error becomes Failed with the
// error's text; nothing is retried.
func (a *ask) Ask(ctx context.Context, question any) DTO_llm.Outcome {
	answer, err := a.completer.Complete(ctx, BuildPrompt(question))
	if err != nil {
		return DTO_llm.Failed{Message: err.Error()}
	}
	return DTO_llm.Succeeded{Answer: answer}
}

// BuildPrompt wraps the question in the fixed system and user messages.
func BuildPrompt(question any) DTO_llm.Prompt {
	return DTO_llm.Prompt{
		System: config_llm.SystemPrompt,
		User:   config_llm.UserPrefix + questionText(question),
	}
}

// questionText renders strings and numbers as sent and every other JSON
// value, null included, in compact JSON form.
func questionText(question any) string {
	switch q := question.(type) {
	case string:
		return q
	case json.Number:
		return q.String()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(question); err != nil {
		return fmt.Sprint(question)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
