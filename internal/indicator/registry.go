package indicator

import (
	"sync"

	"github.com/tradeforge/signalcore/internal/types"
	"github.com/tradeforge/signalcore/pkg/errors"
)

// Factory builds a fresh indicator instance. Instances hold per-pass
// configuration, so the registry hands out constructors rather than shared
// instances.
type Factory func() Indicator

// IndicatorRegistry manages all available indicator factories.
type IndicatorRegistry interface {
	RegisterIndicator(name types.IndicatorType, factory Factory) error
	NewIndicator(name types.IndicatorType) (Indicator, error)
	ListIndicators() []types.IndicatorType
	RemoveIndicator(name types.IndicatorType) error
}

// IndicatorRegistryV1 manages all available indicator factories.
type IndicatorRegistryV1 struct {
	factories map[types.IndicatorType]Factory
	mu        sync.RWMutex
}

// NewIndicatorRegistry creates a registry with all built-in indicators registered.
func NewIndicatorRegistry() IndicatorRegistry {
	registry := &IndicatorRegistryV1{
		factories: make(map[types.IndicatorType]Factory),
		mu:        sync.RWMutex{},
	}

	// Built-ins can never collide on first registration.
	_ = registry.RegisterIndicator(types.IndicatorTypeATR, NewATR)
	_ = registry.RegisterIndicator(types.IndicatorTypeSuperTrend, NewSuperTrend)
	_ = registry.RegisterIndicator(types.IndicatorTypeMA, NewMA)
	_ = registry.RegisterIndicator(types.IndicatorTypeEMA, NewEMA)
	_ = registry.RegisterIndicator(types.IndicatorTypeVolumeBaseline, NewVolumeBaseline)

	return registry
}

// RegisterIndicator adds an indicator factory to the registry.
func (r *IndicatorRegistryV1) RegisterIndicator(name types.IndicatorType, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.Newf(errors.ErrCodeInvalidParameter, "RegisterIndicator: indicator with name %s already registered", name)
	}

	r.factories[name] = factory

	return nil
}

// NewIndicator builds a fresh instance of the named indicator.
func (r *IndicatorRegistryV1) NewIndicator(name types.IndicatorType) (Indicator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "NewIndicator: indicator with name %s not found", name)
	}

	return factory(), nil
}

// ListIndicators returns a list of all registered indicator names.
func (r *IndicatorRegistryV1) ListIndicators() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	return names
}

// RemoveIndicator removes an indicator factory from the registry.
func (r *IndicatorRegistryV1) RemoveIndicator(name types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "RemoveIndicator: indicator with name %s not found", name)
	}

	delete(r.factories, name)

	return nil
}
