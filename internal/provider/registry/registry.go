// Package registry keeps track of the configured completion providers and
// routes model ids to whichever provider serves them.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
)

// Registry implements the domain.ProviderRegistry interface.
type Registry struct {
	mu              sync.RWMutex
	providers       map[string]domain.Provider
	modelToProvider map[string]string
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers:       make(map[string]domain.Provider),
		modelToProvider: make(map[string]string),
	}
}

// Register adds a provider and indexes its supported models for routing.
func (r *Registry) Register(ctx context.Context, provider domain.Provider) error {
	if provider == nil {
		return errors.New("provider cannot be nil")
	}

	name := provider.Name()
	if name == "" {
		return errors.New("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}

	r.providers[name] = provider

	for _, model := range provider.SupportedModels(ctx) {
		r.modelToProvider[model] = name
	}

	return nil
}

// Get retrieves a provider by name.
func (r *Registry) Get(_ context.Context, providerName string) (domain.Provider, error) {
	if providerName == "" {
		return nil, errors.New("provider name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[providerName]
	if !exists {
		return nil, fmt.Errorf("provider %s not found", providerName)
	}

	return provider, nil
}

// List returns all registered provider names.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}

	return names, nil
}

// GetByModel retrieves a provider that serves the given model. Models not
// in the registration-time index fall back to asking each provider, which
// covers dynamic ids like OpenRouter's namespaced models.
func (r *Registry) GetByModel(ctx context.Context, model string) (domain.Provider, error) {
	if model == "" {
		return nil, errors.New("model cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if providerName, exists := r.modelToProvider[model]; exists {
		if provider, ok := r.providers[providerName]; ok {
			return provider, nil
		}
	}

	for _, provider := range r.providers {
		if provider.IsModelSupported(ctx, model) {
			return provider, nil
		}
	}

	return nil, fmt.Errorf("no provider found for model: %s", model)
}
