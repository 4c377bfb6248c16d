package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ask_relay/internal/config"
	DTO_llm "ask_relay/internal/DTO/llm"
	config_llm "ask_relay/internal/config/llm"
)

// Completer sends one prompt upstream and returns the first choice's content.
type Completer interface {
	Complete(ctx context.Context, prompt DTO_llm.Prompt) (string, error)
}

// NewCompleter builds the upstream client selected by cfg.Backend.
// The returned value is immutable and safe for concurrent use.
func NewCompleter(ctx context.Context, cfg config.Config) (Completer, error) {
	// sanity-check: the fixed endpoint must be an absolute http(s) URL
	if _, err := validateBaseURL(config_llm.BaseURL); err != nil {
		return nil, fmt.Errorf("upstream base url: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "openai":
		return NewOpenAI(config_llm.BaseURL, cfg.Token), nil
	case "genkit":
		return NewGenkit(ctx, config_llm.BaseURL, cfg.Token)
	default:
		return nil, fmt.Errorf("unsupported backend: %q", cfg.Backend)
	}
}

// Preflight checks that the upstream answers GET <base>/models with the
// configured credential.
func Preflight(ctx context.Context, cfg config.Config) error {
	return checkModels(ctx, http.DefaultClient, config_llm.BaseURL, cfg.Token)
}

/* ------------------------ helpers ------------------------ */

func validateBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", raw)
	}
	return u, nil
}

// checkModels lists models once, bounded to 5s.
func checkModels(parent context.Context, client *http.Client, baseURL, token string) error {
	base, err := validateBaseURL(baseURL)
	if err != nil {
		return err
	}
	endpoint := base.JoinPath("models").String()

	ctx, cancel := context.WithTimeout(parent, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("preflight %s: %w", endpoint, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode/100 != 2 {
		return fmt.Errorf("preflight %s: status %d", endpoint, res.StatusCode)
	}
	return nil
}
