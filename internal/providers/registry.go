package providers

import (
	"fmt"
	"log/slog"
	"sync"
)

// Config holds the settings for a single provider instance.
type Config struct {
	Type    string // "gemini", "openai", "mock"
	Model   string
	APIKey  string
	BaseURL string
	Enabled bool
}

// RegistryConfig maps provider names to their settings.
type RegistryConfig struct {
	Providers map[string]Config
}

// Registry holds named Generator instances. It supports config-driven
// instantiation with hot-reload and thread-safe access.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
	logger     *slog.Logger
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register adds a generator by name.
func (r *Registry) Register(name string, g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[name] = g
	if r.logger != nil {
		r.logger.Info("registered generator", "name", name)
	}
}

// Get returns a generator by name.
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("generator not found: %s", name)
	}
	return g, nil
}

// List returns all registered generator names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	return names
}

// Has checks whether a generator is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.generators[name]
	return ok
}

// Reload replaces the registered generators with instances built from the
// given config. Disabled entries and entries with unknown types are skipped.
func (r *Registry) Reload(cfg RegistryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]Generator, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		if !pc.Enabled {
			continue
		}
		g, err := newGenerator(name, pc)
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("skipping provider", "name", name, "error", err)
			}
			continue
		}
		next[name] = g
	}

	r.generators = next
	if r.logger != nil {
		r.logger.Info("provider registry reloaded", "count", len(next))
	}
}

func newGenerator(name string, pc Config) (Generator, error) {
	switch pc.Type {
	case "gemini":
		if pc.APIKey == "" {
			return nil, fmt.Errorf("provider %s: api_key is required", name)
		}
		return NewGeminiClient(GeminiConfig{
			APIKey:  pc.APIKey,
			Model:   pc.Model,
			BaseURL: pc.BaseURL,
		}), nil
	case "openai":
		if pc.APIKey == "" {
			return nil, fmt.Errorf("provider %s: api_key is required", name)
		}
		return NewOpenAIClient(OpenAIConfig{
			APIKey:  pc.APIKey,
			Model:   pc.Model,
			BaseURL: pc.BaseURL,
		}), nil
	case "mock":
		return NewMockGenerator(name, nil), nil
	default:
		return nil, fmt.Errorf("provider %s: unknown type %q", name, pc.Type)
	}
}
