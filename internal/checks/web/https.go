package web

import "ScoringEngine/internal/checks"

// HTTPS accepts self-signed certificates; blue teams rarely have real ones.
var HTTPS = &checks.Definition{
	Name:               "HTTPSCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"useragent", "vhost", "uri"},
	Template:           "curl -s -S -4 -v -L --cookie-jar - --ssl-reqd --insecure --header {0} -A {1} {2}",
	Format: func(t *checks.Target) ([]any, error) {
		header, err := hostHeader(t)
		if err != nil {
			return nil, err
		}
		useragent, err := t.Property("useragent")
		if err != nil {
			return nil, err
		}
		uri, err := t.Property("uri")
		if err != nil {
			return nil, err
		}
		return []any{header, useragent, "https://" + hostPort(t) + uri}, nil
	},
}
