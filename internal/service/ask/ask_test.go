package ask

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	DTO_llm "ask_relay/internal/DTO/llm"
)

type fakeCompleter struct {
	answer string
	err    error

	calls  int
	prompt DTO_llm.Prompt
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt DTO_llm.Prompt) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestBuildPrompt(t *testing.T) {
	cases := []struct {
		name     string
		question any
		wantUser string
	}{
		{"string", "What is 2+2?", "Answer like you're a helpful assistant. What is 2+2?"},
		{"empty string", "", "Answer like you're a helpful assistant. "},
		{"absent", nil, "Answer like you're a helpful assistant. null"},
		{"number", float64(42), "Answer like you're a helpful assistant. 42"},
		{"json number", json.Number("42"), "Answer like you're a helpful assistant. 42"},
		{"big integer", json.Number("12345678901234567890"), "Answer like you're a helpful assistant. 12345678901234567890"},
		{"out of float range", json.Number("1e400"), "Answer like you're a helpful assistant. 1e400"},
		{"nested json number", []any{json.Number("12345678901234567890")}, "Answer like you're a helpful assistant. [12345678901234567890]"},
		{"bool", true, "Answer like you're a helpful assistant. true"},
		{"array", []any{float64(1), "a<b"}, `Answer like you're a helpful assistant. [1,"a<b"]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPrompt(tc.question)
			if p.System != "You are a helpful assistant." {
				t.Fatalf("unexpected system message %q", p.System)
			}
			if p.User != tc.wantUser {
				t.Fatalf("expected user message %q, got %q", tc.wantUser, p.User)
			}
		})
	}
}

func TestAskSucceeded(t *testing.T) {
	fc := &fakeCompleter{answer: "4"}
	svc := NewAsk(fc)

	out := svc.Ask(context.Background(), "What is 2+2?")
	got, ok := out.(DTO_llm.Succeeded)
	if !ok {
		t.Fatalf("expected Succeeded, got %T", out)
	}
	if got.Answer != "4" {
		t.Fatalf("expected answer 4, got %q", got.Answer)
	}
	if fc.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", fc.calls)
	}
	if fc.prompt.User != "Answer like you're a helpful assistant. What is 2+2?" {
		t.Fatalf("unexpected prompt sent upstream: %q", fc.prompt.User)
	}
}

func TestAskFailed(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("timeout")}
	svc := NewAsk(fc)

	out := svc.Ask(context.Background(), "What is 2+2?")
	got, ok := out.(DTO_llm.Failed)
	if !ok {
		t.Fatalf("expected Failed, got %T", out)
	}
	if got.Message != "timeout" {
		t.Fatalf("expected message timeout, got %q", got.Message)
	}
	if fc.calls != 1 {
		t.Fatalf("expected no retries, got %d calls", fc.calls)
	}
}

func TestAskAbsentQuestionStillCallsUpstream(t *testing.T) {
	fc := &fakeCompleter{answer: "?"}
	out := NewAsk(fc).Ask(context.Background(), nil)

	if _, ok := out.(DTO_llm.Succeeded); !ok {
		t.Fatalf("expected Succeeded, got %T", out)
	}
	if fc.calls != 1 {
		t.Fatalf("expected upstream call for absent question, got %d", fc.calls)
	}
}
