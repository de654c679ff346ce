package coach

import (
	"fmt"
	"os"
	"time"

	"github.com/reignorshine/plansmith/internal/config"
	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

// BackendConfig is a resolved backend selection.
type BackendConfig struct {
	Backend string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DetectBackend resolves the generation backend from settings and the
// environment. The settings pick the backend; the matching API key env var
// must be set. With no backend configured, whichever key is present wins,
// Anthropic first.
func DetectBackend(settings *config.Settings) (*BackendConfig, error) {
	var llm config.LLM
	if settings != nil {
		llm = settings.LLM
	}

	timeout := time.Duration(llm.TimeoutSeconds) * time.Second

	backends := []struct {
		name   string
		envVar string
	}{
		{"anthropic", "ANTHROPIC_API_KEY"},
		{"gemini", "GEMINI_API_KEY"},
	}

	for _, b := range backends {
		if llm.Backend != "" && llm.Backend != b.name {
			continue
		}
		if key := os.Getenv(b.envVar); key != "" {
			return &BackendConfig{
				Backend: b.name,
				APIKey:  key,
				Model:   llm.Model,
				Timeout: timeout,
			}, nil
		}
		if llm.Backend == b.name {
			return nil, planerrors.NewGenerationError("backend",
				fmt.Errorf("%s environment variable not set", b.envVar))
		}
	}

	return nil, planerrors.NewGenerationError("backend",
		fmt.Errorf("no API key found; set ANTHROPIC_API_KEY or GEMINI_API_KEY"))
}

// NewClient builds a completion client for the resolved backend.
func NewClient(settings *config.Settings) (Client, error) {
	backend, err := DetectBackend(settings)
	if err != nil {
		return nil, err
	}

	clientConfig := ClientConfig{
		APIKey:  backend.APIKey,
		Model:   backend.Model,
		Timeout: backend.Timeout,
	}

	switch backend.Backend {
	case "anthropic":
		return NewAnthropicClientWithConfig(clientConfig), nil
	case "gemini":
		return NewGeminiClientWithConfig(clientConfig), nil
	default:
		return nil, planerrors.NewGenerationError("backend",
			fmt.Errorf("unknown backend: %s", backend.Backend))
	}
}
