package ipv4

import "ScoringEngine/internal/checks"

var ICMP = &checks.Definition{
	Name:     "ICMPCheck",
	Protocol: Protocol,
	Template: "ping -c 1 {0}",
	Format: func(t *checks.Target) ([]any, error) {
		return []any{t.Host}, nil
	},
}
