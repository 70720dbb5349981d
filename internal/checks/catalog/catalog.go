// Package catalog is the compiled-in table of check protocols. A protocol
// is a namespace of check definitions, one definition per source file.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"ScoringEngine/internal/checks"
	"ScoringEngine/internal/checks/ipv4"
	"ScoringEngine/internal/checks/koth"
	"ScoringEngine/internal/checks/web"
)

var ErrUnknownProtocol = errors.New("unknown check protocol")

var protocols = map[string]func() []*checks.Definition{
	ipv4.Protocol: ipv4.Checks,
	koth.Protocol: koth.Checks,
	web.Protocol:  web.Checks,
}

// Protocols returns every compiled-in protocol name, sorted.
func Protocols() []string {
	names := make([]string, 0, len(protocols))
	for name := range protocols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load builds a registry from the given protocols, or from all of them when
// none are named. Unknown protocols, duplicate check names and an empty
// result are errors.
func Load(enabled []string, logger *slog.Logger) (*checks.Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(enabled) == 0 {
		enabled = Protocols()
	}

	registry := checks.NewRegistry(logger)
	for _, protocol := range enabled {
		list, ok := protocols[protocol]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProtocol, protocol)
		}

		for _, def := range list() {
			if def.Protocol != protocol {
				return nil, fmt.Errorf("check %s declares protocol %s but is listed under %s", def.Name, def.Protocol, protocol)
			}
			if err := registry.Register(def); err != nil {
				return nil, fmt.Errorf("load protocol %s: %w", protocol, err)
			}
		}
	}

	if registry.Len() == 0 {
		return nil, errors.New("no checks loaded")
	}

	logger.Info("checks loaded", "protocols", enabled, "count", registry.Len())
	return registry, nil
}
