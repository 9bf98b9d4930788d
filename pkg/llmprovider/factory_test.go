package llmprovider

import (
	"errors"
	"testing"

	"chat-commerce/config"
)

func TestInitializeProviders_SortsAndSkips(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-4o-mini"},
			{Name: "deepseek", Enabled: true, Priority: 3, Model: "deepseek-chat"}, // no key
			{Name: "qwen", Enabled: false, Priority: 4, APIKey: "q", Model: "qwen-plus"},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != ProviderOpenAI || providers[1].Name() != ProviderGemini {
		t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	if _, err := InitializeProviders(nil); err == nil {
		t.Error("expected error for nil config")
	}

	_, err := InitializeProviders(&config.LLMConfig{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}

	_, err = InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
	}})
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewManagerFromConfig_NoProviders(t *testing.T) {
	m, err := NewManagerFromConfig(config.LLMConfig{}, &mockLogger{})
	if err == nil {
		t.Error("expected the init error to be reported")
	}
	if m == nil || m.Enabled() {
		t.Error("expected a usable but disabled manager")
	}
}

func TestBaseURLFor(t *testing.T) {
	tests := map[string]string{
		ProviderOpenAI:   DefaultOpenAIBaseURL,
		ProviderDeepSeek: DefaultDeepSeekBaseURL,
		ProviderQwen:     DefaultQwenBaseURL,
	}
	for name, want := range tests {
		if got := baseURLFor(name, ""); got != want {
			t.Errorf("%s: expected %s, got %s", name, want, got)
		}
	}
	if got := baseURLFor(ProviderOpenAI, "http://localhost:11434/v1"); got != "http://localhost:11434/v1" {
		t.Errorf("configured base url must win, got %s", got)
	}
}
