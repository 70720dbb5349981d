package ipv4

import "ScoringEngine/internal/checks"

// TCP only proves the port accepts connections.
var TCP = &checks.Definition{
	Name:     "TCPCheck",
	Protocol: Protocol,
	Template: "nc -zv -w 3 {0} {1}",
	Format: func(t *checks.Target) ([]any, error) {
		return []any{t.Host, t.Port}, nil
	},
}
