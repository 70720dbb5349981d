package ipv4

import "ScoringEngine/internal/checks"

var Telnet = &checks.Definition{
	Name:               "TelnetCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"commands"},
	Template:           "telnet_check {0} {1} {2} {3} {4}",
	Format: func(t *checks.Target) ([]any, error) {
		args, err := credentialArgs(t)
		if err != nil {
			return nil, err
		}
		return withProperties(t, args, "commands")
	},
}
