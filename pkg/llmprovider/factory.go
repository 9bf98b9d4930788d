package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"chat-commerce/config"
	"chat-commerce/pkg/gemini"
	"chat-commerce/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// NewManagerFromConfig initializes providers and wraps them in a Manager.
// When nothing can be initialized the Manager is returned empty (Enabled() == false)
// together with the reason, so callers can keep running without a model.
func NewManagerFromConfig(cfg config.LLMConfig, l log.Logger) (*Manager, error) {
	managerCfg := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, 500*time.Millisecond),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
	}

	providers, err := InitializeProviders(&cfg)
	if err != nil {
		return NewManager(nil, managerCfg, l), err
	}
	return NewManager(providers, managerCfg, l), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout := parseDuration(cfg.Timeout, 0)

	switch cfg.Name {
	case ProviderOpenAI, ProviderDeepSeek, ProviderQwen, "alibaba":
		name := cfg.Name
		if name == "alibaba" {
			name = ProviderQwen
		}
		return NewOpenAIAdapter(OpenAIConfig{
			Name:    name,
			APIKey:  cfg.APIKey,
			BaseURL: baseURLFor(name, cfg.BaseURL),
			Model:   cfg.Model,
			Timeout: timeout,
		})

	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func baseURLFor(name, configured string) string {
	if configured != "" {
		return configured
	}
	switch name {
	case ProviderDeepSeek:
		return DefaultDeepSeekBaseURL
	case ProviderQwen:
		return DefaultQwenBaseURL
	default:
		return DefaultOpenAIBaseURL
	}
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
