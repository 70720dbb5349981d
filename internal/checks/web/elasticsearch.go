package web

import "ScoringEngine/internal/checks"

var Elasticsearch = &checks.Definition{
	Name:               "ElasticsearchCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"index", "doc_type"},
	Template:           "elasticsearch_check {0} {1} {2} {3}",
	Format: func(t *checks.Target) ([]any, error) {
		values, err := t.Values("index", "doc_type")
		if err != nil {
			return nil, err
		}
		return append([]any{t.Host, t.Port}, values...), nil
	},
}
