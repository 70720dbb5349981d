package koth

import "ScoringEngine/internal/checks"

var HTTPOwnership = &checks.Definition{
	Name:               "HTTPOwnershipCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"useragent", "vhost", "uri"},
	Template:           "http_ownership_check {0} {1} {2} {3} {4}",
	Format: func(t *checks.Target) ([]any, error) {
		values, err := t.Values("useragent", "vhost", "uri")
		if err != nil {
			return nil, err
		}
		return append([]any{t.Host, t.Port}, values...), nil
	},
}
