package checks

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	"ScoringEngine/internal/engine/models"
)

// Registry maps check names to their definitions.
// Registration happens at startup before concurrent access, so no mutex is needed.
type Registry struct {
	defs   map[string]*Definition
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		defs:   make(map[string]*Definition),
		logger: logger.With("component", "check-registry"),
	}
}

// Register adds def. Two definitions with the same name are rejected.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("register check: definition has no name")
	}

	if existing, ok := r.defs[def.Name]; ok {
		return fmt.Errorf("%w: %s (protocols %s and %s)", ErrDuplicateCheck, def.Name, existing.Protocol, def.Protocol)
	}

	r.defs[def.Name] = def
	r.logger.Debug("check registered", "name", def.Name, "protocol", def.Protocol)
	return nil
}

func (r *Registry) Lookup(name string) (*Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCheckNotFound, name)
	}
	return def, nil
}

func (r *Registry) Len() int {
	return len(r.defs)
}

// Names returns the registered check names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind resolves the service check by name and binds it to env.
func (r *Registry) Bind(service *models.Service, env *models.Environment, rnd *rand.Rand) (*Check, error) {
	def, err := r.Lookup(service.CheckName)
	if err != nil {
		return nil, err
	}
	return New(def, service, env, rnd)
}

// Verify reports every service that references an unregistered check.
func (r *Registry) Verify(services []*models.Service) error {
	var errs []error
	for _, service := range services {
		if _, err := r.Lookup(service.CheckName); err != nil {
			errs = append(errs, fmt.Errorf("service %s: %w", service.FullName(), err))
		}
	}
	return errors.Join(errs...)
}
