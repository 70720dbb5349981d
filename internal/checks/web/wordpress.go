package web

import "ScoringEngine/internal/checks"

var Wordpress = &checks.Definition{
	Name:               "WordpressCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"useragent", "vhost", "data", "uri"},
	Template:           "curl -s -S -4 -v -L --cookie-jar - --header {0} -A {1} --data {2} {3}",
	Format: func(t *checks.Target) ([]any, error) {
		header, err := hostHeader(t)
		if err != nil {
			return nil, err
		}
		values, err := t.Values("useragent", "data", "uri")
		if err != nil {
			return nil, err
		}
		return []any{header, values[0], values[1], "http://" + hostPort(t) + values[2].(string)}, nil
	},
}
